// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/postmint-net/midas/internal/entities"
	"github.com/postmint-net/midas/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrNotFound is returned when a requested user is unknown.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when an url was already submitted.
var ErrAlreadyExists = errors.New("already exists")

// ErrUnsupportedPlatform is returned when an url doesn't belong to a supported social network.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ErrNothingToClaim is returned when a user's claimable balance is not positive.
var ErrNothingToClaim = errors.New("nothing to claim")

// BaseRewardRate is a reward for a single view.
const BaseRewardRate = 0.00001

// Service ...
type Service interface {
	AuthorizeWallet(ctx context.Context, walletAddress string) (*entities.Profile, error)
	SubmitContent(ctx context.Context, walletAddress, url string) (*SubmittedContent, error)
	GetUserSubmissions(ctx context.Context, walletAddress string) ([]*UserSubmission, error)
	ListSubmissions(ctx context.Context, p *ListParams) (*SubmissionsPage, error)
	GetProfile(ctx context.Context, walletAddress string) (*entities.Profile, error)
	ClaimRewards(ctx context.Context, walletAddress string) (*entities.RewardClaim, error)

	// MeasureSubmissions re-measures live submissions and accrues rewards.
	MeasureSubmissions(ctx context.Context) error
}

// SubmittedContent is a created submission with its one-time estimate.
type SubmittedContent struct {
	entities.Submission
	EstimatedViews  int64
	EstimatedReward float64
}

// UserSubmission is a submission with its latest view metric.
type UserSubmission struct {
	entities.Submission
	LatestMetric *entities.ViewMetric
}

// ListedSubmission is a submission with its owner's wallet address.
type ListedSubmission struct {
	UserSubmission
	OwnerAddress string
}

// ListParams ...
type ListParams struct {
	SortBy  storage.SortType
	OrderBy storage.OrderType
	Page    uint32
	Limit   uint32
}

// SubmissionsPage ...
type SubmissionsPage struct {
	Submissions []*ListedSubmission
	Total       uint64
}
