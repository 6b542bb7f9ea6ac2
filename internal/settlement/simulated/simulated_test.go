package simulated

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulated_Settle(t *testing.T) {
	s := New()

	ref, err := s.Settle(context.Background(), "wallet", 1)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^tx_\d+_[0-9a-f]{9}$`), ref)

	ref2, err := s.Settle(context.Background(), "wallet", 1)
	require.NoError(t, err)
	assert.NotEqual(t, ref, ref2)
}
