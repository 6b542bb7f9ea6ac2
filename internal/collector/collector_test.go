package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servicemock "github.com/postmint-net/midas/internal/service/mock"
)

func TestCollector_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := servicemock.NewMockService(ctrl)
	srv.EXPECT().MeasureSubmissions(gomock.Any()).Return(nil).MinTimes(2)

	c := New(srv, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, c.Run(ctx))

	_, err := c.Ping(context.Background())
	assert.NoError(t, err)
}

func TestCollector_Run_serviceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := servicemock.NewMockService(ctrl)
	srv.EXPECT().MeasureSubmissions(gomock.Any()).Return(errors.New("test")).MinTimes(1)

	c := New(srv, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// failures are logged and do not stop the loop
	require.NoError(t, c.Run(ctx))
}

func TestCollector_Ping(t *testing.T) {
	c := New(nil, 10*time.Millisecond).(*collector)

	// no cycle completed yet
	_, err := c.Ping(context.Background())
	assert.NoError(t, err)

	c.lastRun = time.Now()
	_, err = c.Ping(context.Background())
	assert.NoError(t, err)

	c.lastRun = time.Now().Add(-time.Second)
	_, err = c.Ping(context.Background())
	assert.Error(t, err)

	assert.Equal(t, "collector", c.Name())
}
