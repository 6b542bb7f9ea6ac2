package server

import (
	"regexp"

	"github.com/jellydator/validation"
)

const maxLimit = 100
const defaultLimit = 20
const defaultPage = 1

// nolint:gochecknoglobals
var walletAddressPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// AuthWalletRequest ...
// swagger:model
type AuthWalletRequest struct {
	WalletAddress string `json:"walletAddress"`
}

// Validate ...
func (r AuthWalletRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(walletAddressPattern)),
	)
}

// SubmitContentRequest ...
// swagger:model
type SubmitContentRequest struct {
	URL           string `json:"url"`
	WalletAddress string `json:"walletAddress"`
}

// Validate ...
func (r SubmitContentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required),
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(walletAddressPattern)),
	)
}

// ClaimRewardsRequest ...
// swagger:model
type ClaimRewardsRequest struct {
	WalletAddress string `json:"walletAddress"`
}

// Validate ...
func (r ClaimRewardsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(walletAddressPattern)),
	)
}

// User ...
type User struct {
	ID               string  `json:"id"`
	WalletAddress    string  `json:"walletAddress"`
	TotalPosts       uint32  `json:"totalPosts"`
	TotalViews       int64   `json:"totalViews"`
	TotalRewards     float64 `json:"totalRewards"`
	ClaimableRewards float64 `json:"claimableRewards"`
}

// AuthWalletResponse ...
// swagger:model
type AuthWalletResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// Submission ...
type Submission struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Platform    string  `json:"platform"`
	Views       int64   `json:"views"`
	Reward      float64 `json:"reward"`
	Status      string  `json:"status"`
	SubmittedAt uint64  `json:"submittedAt"`
	UpdatedAt   uint64  `json:"updatedAt"`
}

// SubmittedContent is a created submission with its one-time estimate.
type SubmittedContent struct {
	Submission
	EstimatedViews  int64   `json:"estimatedViews"`
	EstimatedReward float64 `json:"estimatedReward"`
}

// SubmitContentResponse ...
// swagger:model
type SubmitContentResponse struct {
	Success    bool             `json:"success"`
	Submission SubmittedContent `json:"submission"`
}

// ViewMetric ...
type ViewMetric struct {
	ID    int64  `json:"id"`
	Views int64  `json:"views"`
	Date  uint64 `json:"date"`
}

// UserSubmission is a submission with its latest view metric.
type UserSubmission struct {
	Submission
	LatestViewMetric *ViewMetric `json:"latestViewMetric"`
}

// ListUserContentResponse ...
// swagger:model
type ListUserContentResponse struct {
	Success     bool             `json:"success"`
	Submissions []UserSubmission `json:"submissions"`
}

// SubmissionUser is a truncated owner reference on a global listing row.
type SubmissionUser struct {
	WalletAddress string `json:"walletAddress"`
	DisplayName   string `json:"displayName"`
}

// ListedSubmission ...
type ListedSubmission struct {
	UserSubmission
	User SubmissionUser `json:"user"`
}

// Pagination ...
type Pagination struct {
	Page            uint32 `json:"page"`
	Limit           uint32 `json:"limit"`
	TotalCount      uint64 `json:"totalCount"`
	TotalPages      uint64 `json:"totalPages"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
}

// ListAllContentResponse ...
// swagger:model
type ListAllContentResponse struct {
	Success     bool               `json:"success"`
	Submissions []ListedSubmission `json:"submissions"`
	Pagination  Pagination         `json:"pagination"`
}

// Profile ...
type Profile struct {
	User
	CreatedAt uint64 `json:"createdAt"`
	UpdatedAt uint64 `json:"updatedAt"`
}

// ProfileResponse ...
// swagger:model
type ProfileResponse struct {
	Success bool    `json:"success"`
	Profile Profile `json:"profile"`
}

// RewardClaim ...
type RewardClaim struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	TxHash    string  `json:"txHash"`
	ClaimedAt uint64  `json:"claimedAt"`
}

// ClaimRewardsResponse ...
// swagger:model
type ClaimRewardsResponse struct {
	Success bool        `json:"success"`
	Claim   RewardClaim `json:"claim"`
	Message string      `json:"message"`
}
