// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/postmint-net/midas/internal/analyzer"
	"github.com/postmint-net/midas/internal/entities"
	"github.com/postmint-net/midas/internal/platform"
	"github.com/postmint-net/midas/internal/service"
	"github.com/postmint-net/midas/internal/settlement"
	"github.com/postmint-net/midas/internal/storage"
)

var log = logrus.WithField("layer", "service")

// Estimate used when the analyzer is unavailable.
const (
	fallbackViews   = 500
	fallbackQuality = 0.7
)

type srv struct {
	s   storage.Storage
	a   analyzer.Analyzer
	set settlement.Settler
}

// New creates new instance of service.
func New(s storage.Storage, a analyzer.Analyzer, set settlement.Settler) service.Service {
	return srv{
		s:   s,
		a:   a,
		set: set,
	}
}

func (s srv) AuthorizeWallet(ctx context.Context, walletAddress string) (*entities.Profile, error) {
	u, err := findOrCreateUser(ctx, s.s, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize wallet: %w", err)
	}

	t, err := s.s.GetUserTotals(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	return &entities.Profile{
		User:         *u,
		TotalViews:   t.Views,
		TotalRewards: t.Rewards,
	}, nil
}

func (s srv) SubmitContent(ctx context.Context, walletAddress, url string) (*service.SubmittedContent, error) {
	p, ok := platform.Detect(url)
	if !ok {
		return nil, service.ErrUnsupportedPlatform
	}

	now := time.Now().UTC()
	sub := &entities.Submission{
		ID:          uuid.New().String(),
		URL:         url,
		Platform:    string(p),
		Views:       0,
		Reward:      0,
		Status:      entities.StatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		u, err := findOrCreateUser(ctx, tx, walletAddress)
		if err != nil {
			return err
		}
		sub.Owner = u.ID

		if err := tx.CreateSubmission(ctx, sub); err != nil {
			return err
		}

		if err := tx.CreateViewMetric(ctx, &entities.ViewMetric{
			SubmissionID: sub.ID,
			Views:        0,
			Date:         now,
		}); err != nil {
			return err
		}

		return tx.IncrementPostsCount(ctx, u.ID)
	}); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, service.ErrAlreadyExists
		}

		return nil, fmt.Errorf("failed to submit content: %w", err)
	}

	// Estimation runs only for accepted submissions, duplicates never reach the analyzer.
	est, err := s.a.Estimate(ctx, url)
	if err != nil {
		log.WithError(err).WithField("url", url).Error("estimation failed, falling back to fixed estimate")
		est = entities.Estimate{Views: fallbackViews, Quality: fallbackQuality}
	}

	return &service.SubmittedContent{
		Submission:      *sub,
		EstimatedViews:  est.Views,
		EstimatedReward: float64(est.Views) * service.BaseRewardRate * est.Quality,
	}, nil
}

func (s srv) GetUserSubmissions(ctx context.Context, walletAddress string) ([]*service.UserSubmission, error) {
	u, err := s.s.GetUser(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	subs, err := s.s.GetUserSubmissions(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	metrics, err := s.s.GetLatestViewMetrics(ctx, submissionIDs(subs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to get view metrics: %w", err)
	}

	out := make([]*service.UserSubmission, len(subs))
	for i, v := range subs {
		out[i] = &service.UserSubmission{
			Submission:   *v,
			LatestMetric: metrics[v.ID],
		}
	}

	return out, nil
}

func (s srv) ListSubmissions(ctx context.Context, p *service.ListParams) (*service.SubmissionsPage, error) {
	rows, err := s.s.ListSubmissions(ctx, &storage.ListSubmissionsParams{
		SortBy:  p.SortBy,
		OrderBy: p.OrderBy,
		Limit:   p.Limit,
		Offset:  uint64(p.Page-1) * uint64(p.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	total, err := s.s.CountSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	ids := make([]string, len(rows))
	for i, v := range rows {
		ids[i] = v.ID
	}

	metrics, err := s.s.GetLatestViewMetrics(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get view metrics: %w", err)
	}

	out := make([]*service.ListedSubmission, len(rows))
	for i, v := range rows {
		out[i] = &service.ListedSubmission{
			UserSubmission: service.UserSubmission{
				Submission:   v.Submission,
				LatestMetric: metrics[v.ID],
			},
			OwnerAddress: v.OwnerAddress,
		}
	}

	return &service.SubmissionsPage{
		Submissions: out,
		Total:       total,
	}, nil
}

func (s srv) GetProfile(ctx context.Context, walletAddress string) (*entities.Profile, error) {
	u, err := s.s.GetUser(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	t, err := s.s.GetUserTotals(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	return &entities.Profile{
		User:         *u,
		TotalViews:   t.Views,
		TotalRewards: t.Rewards,
	}, nil
}

func (s srv) ClaimRewards(ctx context.Context, walletAddress string) (*entities.RewardClaim, error) {
	var claim *entities.RewardClaim

	// The settlement call shares the tx boundary with balance zeroing, so its
	// failure leaves neither a claim record nor a balance change behind.
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		u, err := tx.GetUserForUpdate(ctx, walletAddress)
		if err != nil {
			return err
		}

		if u.ClaimableRewards <= 0 {
			return service.ErrNothingToClaim
		}

		ref, err := s.set.Settle(ctx, walletAddress, u.ClaimableRewards)
		if err != nil {
			return fmt.Errorf("failed to settle: %w", err)
		}

		claim = &entities.RewardClaim{
			ID:        uuid.New().String(),
			Owner:     u.ID,
			Amount:    u.ClaimableRewards,
			TxHash:    ref,
			ClaimedAt: time.Now().UTC(),
		}

		if err := tx.CreateRewardClaim(ctx, claim); err != nil {
			return err
		}

		return tx.ZeroClaimableRewards(ctx, u.ID)
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		if errors.Is(err, service.ErrNothingToClaim) {
			return nil, service.ErrNothingToClaim
		}

		return nil, fmt.Errorf("failed to claim rewards: %w", err)
	}

	return claim, nil
}

func (s srv) MeasureSubmissions(ctx context.Context) error {
	subs, err := s.s.GetMeasurableSubmissions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get measurable submissions: %w", err)
	}

	for _, sub := range subs {
		if err := s.measure(ctx, sub); err != nil {
			log.WithError(err).WithField("submission", sub.ID).Error("failed to measure submission")
		}
	}

	return nil
}

func (s srv) measure(ctx context.Context, sub *entities.Submission) error {
	est, err := s.a.Estimate(ctx, sub.URL)
	if err != nil {
		return fmt.Errorf("failed to estimate: %w", err)
	}

	views := est.Views
	if views < sub.Views { // measured views never go down
		views = sub.Views
	}

	delta := views - sub.Views
	rewardDelta := float64(delta) * service.BaseRewardRate * est.Quality

	status := sub.Status
	if status == entities.StatusPending {
		status = entities.StatusApproved
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.UpdateSubmissionMetrics(ctx, sub.ID, views, sub.Reward+rewardDelta, status); err != nil {
			return err
		}

		if err := tx.CreateViewMetric(ctx, &entities.ViewMetric{
			SubmissionID: sub.ID,
			Views:        views,
			Date:         time.Now().UTC(),
		}); err != nil {
			return err
		}

		if delta == 0 {
			return nil
		}

		return tx.AddClaimableRewards(ctx, sub.Owner, rewardDelta)
	})
}

func findOrCreateUser(ctx context.Context, s storage.Storage, walletAddress string) (*entities.User, error) {
	u, err := s.GetUser(ctx, walletAddress)
	if err == nil {
		return u, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	now := time.Now().UTC()
	u = &entities.User{
		ID:            uuid.New().String(),
		WalletAddress: walletAddress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.CreateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) { // concurrent authorization
			return s.GetUser(ctx, walletAddress)
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func submissionIDs(subs []*entities.Submission) []string {
	out := make([]string, len(subs))
	for i, v := range subs {
		out[i] = v.ID
	}

	return out
}
