// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/postmint-net/midas/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when a uniqueness constraint is violated.
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	GetUser(ctx context.Context, walletAddress string) (*entities.User, error)
	// GetUserForUpdate locks the user's row until the surrounding tx ends.
	GetUserForUpdate(ctx context.Context, walletAddress string) (*entities.User, error)
	CreateUser(ctx context.Context, u *entities.User) error
	IncrementPostsCount(ctx context.Context, userID string) error
	AddClaimableRewards(ctx context.Context, userID string, amount float64) error
	ZeroClaimableRewards(ctx context.Context, userID string) error

	CreateSubmission(ctx context.Context, sub *entities.Submission) error
	GetUserSubmissions(ctx context.Context, userID string) ([]*entities.Submission, error)
	ListSubmissions(ctx context.Context, p *ListSubmissionsParams) ([]*SubmissionRow, error)
	CountSubmissions(ctx context.Context) (uint64, error)
	GetMeasurableSubmissions(ctx context.Context) ([]*entities.Submission, error)
	UpdateSubmissionMetrics(ctx context.Context, id string, views int64, reward float64, status entities.Status) error

	CreateViewMetric(ctx context.Context, m *entities.ViewMetric) error
	GetLatestViewMetrics(ctx context.Context, submissionID ...string) (map[string]*entities.ViewMetric, error)

	GetUserTotals(ctx context.Context, userID string) (*Totals, error)

	CreateRewardClaim(ctx context.Context, c *entities.RewardClaim) error
}

// SortType ...
type SortType string

const (
	// SubmittedAtSortType ...
	SubmittedAtSortType SortType = "submitted_at"
	// UpdatedAtSortType ...
	UpdatedAtSortType SortType = "updated_at"
	// ViewsSortType ...
	ViewsSortType SortType = "views"
	// RewardSortType ...
	RewardSortType SortType = "reward"
	// PlatformSortType ...
	PlatformSortType SortType = "platform"
	// StatusSortType ...
	StatusSortType SortType = "status"
	// URLSortType ...
	URLSortType SortType = "url"
)

// OrderType ...
type OrderType string

const (
	// AscendingOrder ...
	AscendingOrder OrderType = "asc"
	// DescendingOrder ...
	DescendingOrder OrderType = "desc"
)

// ListSubmissionsParams ...
type ListSubmissionsParams struct {
	SortBy  SortType
	OrderBy OrderType
	Limit   uint32
	Offset  uint64
}

// SubmissionRow is a submission joined with its owner's wallet address.
type SubmissionRow struct {
	entities.Submission
	OwnerAddress string
}

// Totals are aggregates over a user's submissions.
type Totals struct {
	Views   int64
	Rewards float64
}
