// Package settlement contains interface of the reward settlement service.
package settlement

import (
	"context"
)

//go:generate mockgen -destination=./mock/settlement.go -package=mock -source=settlement.go

// Settler disburses a claimed amount to a wallet and returns a settlement reference.
type Settler interface {
	Settle(ctx context.Context, walletAddress string, amount float64) (string, error)
}
