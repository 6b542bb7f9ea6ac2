// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Status of a submission's review lifecycle.
type Status string

const (
	// StatusPending ...
	StatusPending Status = "pending"
	// StatusApproved ...
	StatusApproved Status = "approved"
	// StatusRejected ...
	StatusRejected Status = "rejected"
)

// User ...
type User struct {
	ID               string
	WalletAddress    string
	PostsCount       uint32
	ClaimableRewards float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Submission ...
type Submission struct {
	ID          string
	Owner       string
	URL         string
	Platform    string
	Views       int64
	Reward      float64
	Status      Status
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// ViewMetric is a point-in-time view-count snapshot of a submission.
type ViewMetric struct {
	ID           int64
	SubmissionID string
	Views        int64
	Date         time.Time
}

// RewardClaim is an immutable record of a claim event.
type RewardClaim struct {
	ID        string
	Owner     string
	Amount    float64
	TxHash    string
	ClaimedAt time.Time
}

// Estimate is a one-time content performance estimate produced by an analyzer.
type Estimate struct {
	Views   int64
	Quality float64 // [0.5, 1.0]
}

// Profile is a user snapshot with totals recomputed from submissions.
type Profile struct {
	User
	TotalViews   int64
	TotalRewards float64
}
