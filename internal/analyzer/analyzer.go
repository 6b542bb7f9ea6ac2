// Package analyzer contains interface of the content estimation service.
package analyzer

import (
	"context"

	"github.com/postmint-net/midas/internal/entities"
)

//go:generate mockgen -destination=./mock/analyzer.go -package=mock -source=analyzer.go

// Analyzer estimates content performance for an url.
type Analyzer interface {
	Estimate(ctx context.Context, url string) (entities.Estimate, error)
}
