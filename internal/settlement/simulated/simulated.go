// Package simulated is a stand-in settler which fabricates settlement references.
// Production deployments replace it with a real disbursement service.
package simulated

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/postmint-net/midas/internal/settlement"
)

type simulated struct{}

// New creates new instance of simulated settler.
func New() settlement.Settler {
	return simulated{}
}

func (simulated) Settle(_ context.Context, _ string, _ float64) (string, error) {
	ref := strings.ReplaceAll(uuid.New().String(), "-", "")

	return fmt.Sprintf("tx_%d_%s", time.Now().UnixNano()/int64(time.Millisecond), ref[:9]), nil
}
