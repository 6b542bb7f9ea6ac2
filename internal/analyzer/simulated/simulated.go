// Package simulated is a stand-in analyzer which fabricates estimates.
// Production deployments replace it with a real analysis service.
package simulated

import (
	"context"
	"math/rand"

	"github.com/postmint-net/midas/internal/analyzer"
	"github.com/postmint-net/midas/internal/entities"
)

type simulated struct{}

// New creates new instance of simulated analyzer.
func New() analyzer.Analyzer {
	return simulated{}
}

func (simulated) Estimate(_ context.Context, _ string) (entities.Estimate, error) {
	return entities.Estimate{
		Views:   rand.Int63n(10000) + 100, // nolint:gosec
		Quality: rand.Float64()*0.5 + 0.5, // nolint:gosec
	}, nil
}
