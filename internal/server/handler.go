package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"

	"github.com/Decentr-net/go-api"

	"github.com/postmint-net/midas/internal/entities"
	"github.com/postmint-net/midas/internal/service"
	"github.com/postmint-net/midas/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) authWallet(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/wallet Auth AuthWallet
	//
	// Find or create a user by wallet address.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/AuthWalletRequest"
	// responses:
	//   '200':
	//     description: User
	//     schema:
	//       "$ref": "#/definitions/AuthWalletResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req AuthWalletRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.s.AuthorizeWallet(r.Context(), req.WalletAddress)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to authorize wallet: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, AuthWalletResponse{
		Success: true,
		User:    toAPIUser(profile),
	})
}

func (s server) submitContent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /content/submit Content SubmitContent
	//
	// Submit a social media content url for view-based rewards.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SubmitContentRequest"
	// responses:
	//   '200':
	//     description: Submission with one-time estimate
	//     schema:
	//       "$ref": "#/definitions/SubmitContentResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: url was already submitted
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SubmitContentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.s.SubmitContent(r.Context(), req.WalletAddress, req.URL)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedPlatform) {
			api.WriteError(w, http.StatusBadRequest, "invalid url format, please use a valid social media link")
			return
		}
		if errors.Is(err, service.ErrAlreadyExists) {
			api.WriteError(w, http.StatusConflict, "content already submitted")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to submit content: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, SubmitContentResponse{
		Success: true,
		Submission: SubmittedContent{
			Submission:      toAPISubmission(sub.Submission),
			EstimatedViews:  sub.EstimatedViews,
			EstimatedReward: sub.EstimatedReward,
		},
	})
}

func (s server) listUserContent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /content/list Content ListUserContent
	//
	// Return user's submissions with their latest view metrics, newest first.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: walletAddress
	//   in: query
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Submissions
	//     schema:
	//       "$ref": "#/definitions/ListUserContentResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	walletAddress := r.URL.Query().Get("walletAddress")
	if walletAddress == "" {
		api.WriteError(w, http.StatusBadRequest, "walletAddress is required")
		return
	}

	subs, err := s.s.GetUserSubmissions(r.Context(), walletAddress)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to list submissions: %s", err.Error())
		return
	}

	out := make([]UserSubmission, len(subs))
	for i, v := range subs {
		out[i] = toAPIUserSubmission(v)
	}

	api.WriteOK(w, http.StatusOK, ListUserContentResponse{
		Success:     true,
		Submissions: out,
	})
}

func (s server) listAllContent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /content/all Content ListAllContent
	//
	// Return submissions across all users with pagination metadata.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: page
	//   description: page number
	//   in: query
	//   required: false
	//   default: 1
	//   minimum: 1
	// - name: limit
	//   description: limits count of returned submissions
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: sortBy
	//   description: sets submissions' field to be sorted by
	//   in: query
	//   required: false
	//   default: submittedAt
	//   type: string
	//   enum: [submittedAt, updatedAt, views, reward, platform, status, url]
	// - name: sortOrder
	//   description: sets sort's direction
	//   in: query
	//   required: false
	//   default: desc
	//   type: string
	//   enum: [asc, desc]
	// responses:
	//   '200':
	//     description: Submissions
	//     schema:
	//       "$ref": "#/definitions/ListAllContentResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.s.ListSubmissions(r.Context(), params)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list submissions: %s", err.Error())
		return
	}

	out := make([]ListedSubmission, len(page.Submissions))
	for i, v := range page.Submissions {
		out[i] = ListedSubmission{
			UserSubmission: toAPIUserSubmission(&v.UserSubmission),
			User: SubmissionUser{
				WalletAddress: v.OwnerAddress,
				DisplayName:   truncateAddress(v.OwnerAddress),
			},
		}
	}

	totalPages := page.Total / uint64(params.Limit)
	if page.Total%uint64(params.Limit) != 0 {
		totalPages++
	}

	api.WriteOK(w, http.StatusOK, ListAllContentResponse{
		Success:     true,
		Submissions: out,
		Pagination: Pagination{
			Page:            params.Page,
			Limit:           params.Limit,
			TotalCount:      page.Total,
			TotalPages:      totalPages,
			HasNextPage:     uint64(params.Page) < totalPages,
			HasPreviousPage: params.Page > 1,
		},
	})
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /user/profile User GetProfile
	//
	// Get user profile with totals recomputed over submissions.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: walletAddress
	//   in: query
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/ProfileResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	walletAddress := r.URL.Query().Get("walletAddress")
	if walletAddress == "" {
		api.WriteError(w, http.StatusBadRequest, "walletAddress is required")
		return
	}

	profile, err := s.s.GetProfile(r.Context(), walletAddress)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, ProfileResponse{
		Success: true,
		Profile: Profile{
			User:      toAPIUser(profile),
			CreatedAt: uint64(profile.CreatedAt.Unix()),
			UpdatedAt: uint64(profile.UpdatedAt.Unix()),
		},
	})
}

func (s server) claimRewards(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /rewards/claim Rewards ClaimRewards
	//
	// Claim the whole claimable balance and record a settlement reference.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/ClaimRewardsRequest"
	// responses:
	//   '200':
	//     description: Claim
	//     schema:
	//       "$ref": "#/definitions/ClaimRewardsResponse"
	//   '400':
	//     description: bad request or nothing to claim
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ClaimRewardsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	claim, err := s.s.ClaimRewards(r.Context(), req.WalletAddress)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		if errors.Is(err, service.ErrNothingToClaim) {
			api.WriteError(w, http.StatusBadRequest, "no rewards available to claim")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to claim rewards: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, ClaimRewardsResponse{
		Success: true,
		Claim: RewardClaim{
			ID:        claim.ID,
			Amount:    claim.Amount,
			TxHash:    claim.TxHash,
			ClaimedAt: uint64(claim.ClaimedAt.Unix()),
		},
		Message: "rewards claimed successfully",
	})
}

func decodeAndValidate(r *http.Request, object interface{}) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close() // nolint:errcheck

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("%w: failed to decode json", errInvalidRequest)
	}

	if v, ok := object.(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
		}
	}

	return nil
}

// nolint: gocyclo
func extractListParamsFromQuery(q url.Values) (*service.ListParams, error) {
	out := service.ListParams{
		SortBy:  storage.SubmittedAtSortType,
		OrderBy: storage.DescendingOrder,
		Page:    defaultPage,
		Limit:   defaultLimit,
	}

	switch q.Get("sortBy") {
	case "submittedAt":
		out.SortBy = storage.SubmittedAtSortType
	case "updatedAt":
		out.SortBy = storage.UpdatedAtSortType
	case "views":
		out.SortBy = storage.ViewsSortType
	case "reward":
		out.SortBy = storage.RewardSortType
	case "platform":
		out.SortBy = storage.PlatformSortType
	case "status":
		out.SortBy = storage.StatusSortType
	case "url":
		out.SortBy = storage.URLSortType
	case "":
	default:
		return nil, fmt.Errorf("%w: invalid sortBy", errInvalidRequest)
	}

	orderBy := storage.OrderType(q.Get("sortOrder"))
	switch orderBy {
	case storage.AscendingOrder, storage.DescendingOrder:
		out.OrderBy = orderBy
	case "":
	default:
		return nil, fmt.Errorf("%w: invalid sortOrder", errInvalidRequest)
	}

	if s := q.Get("page"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil || v == 0 {
			return nil, fmt.Errorf("%w: failed to parse page", errInvalidRequest)
		}

		out.Page = uint32(v)
	}

	if s := q.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil || v == 0 {
			return nil, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
		}

		if v > maxLimit {
			return nil, fmt.Errorf("%w: limit is too big", errInvalidRequest)
		}

		out.Limit = uint32(v)
	}

	return &out, nil
}

func toAPIUser(p *entities.Profile) User {
	return User{
		ID:               p.ID,
		WalletAddress:    p.WalletAddress,
		TotalPosts:       p.PostsCount,
		TotalViews:       p.TotalViews,
		TotalRewards:     p.TotalRewards,
		ClaimableRewards: p.ClaimableRewards,
	}
}

func toAPISubmission(sub entities.Submission) Submission {
	return Submission{
		ID:          sub.ID,
		URL:         sub.URL,
		Platform:    sub.Platform,
		Views:       sub.Views,
		Reward:      sub.Reward,
		Status:      string(sub.Status),
		SubmittedAt: uint64(sub.SubmittedAt.Unix()),
		UpdatedAt:   uint64(sub.UpdatedAt.Unix()),
	}
}

func toAPIUserSubmission(v *service.UserSubmission) UserSubmission {
	out := UserSubmission{
		Submission: toAPISubmission(v.Submission),
	}

	if v.LatestMetric != nil {
		out.LatestViewMetric = &ViewMetric{
			ID:    v.LatestMetric.ID,
			Views: v.LatestMetric.Views,
			Date:  uint64(v.LatestMetric.Date.Unix()),
		}
	}

	return out
}

func truncateAddress(s string) string {
	if len(s) < 8 {
		return s
	}

	return fmt.Sprintf("%s...%s", s[:4], s[len(s)-4:])
}
