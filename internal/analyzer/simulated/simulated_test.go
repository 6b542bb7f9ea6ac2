package simulated

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulated_Estimate(t *testing.T) {
	a := New()

	for i := 0; i < 100; i++ {
		est, err := a.Estimate(context.Background(), "https://twitter.com/a/status/1")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, est.Views, int64(100))
		assert.Less(t, est.Views, int64(10100))
		assert.GreaterOrEqual(t, est.Quality, 0.5)
		assert.LessOrEqual(t, est.Quality, 1.0)
	}
}
