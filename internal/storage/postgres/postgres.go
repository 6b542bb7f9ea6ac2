// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/postmint-net/midas/internal/entities"
	"github.com/postmint-net/midas/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type userDTO struct {
	ID               string    `db:"id"`
	WalletAddress    string    `db:"wallet_address"`
	PostsCount       uint32    `db:"posts_count"`
	ClaimableRewards float64   `db:"claimable_rewards"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type submissionDTO struct {
	ID          string    `db:"id"`
	Owner       string    `db:"owner"`
	URL         string    `db:"url"`
	Platform    string    `db:"platform"`
	Views       int64     `db:"views"`
	Reward      float64   `db:"reward"`
	Status      string    `db:"status"`
	SubmittedAt time.Time `db:"submitted_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type submissionRowDTO struct {
	submissionDTO
	OwnerAddress string `db:"owner_address"`
}

type viewMetricDTO struct {
	ID           int64     `db:"id"`
	SubmissionID string    `db:"submission_id"`
	Views        int64     `db:"views"`
	Date         time.Time `db:"date"`
}

type rewardClaimDTO struct {
	ID        string    `db:"id"`
	Owner     string    `db:"owner"`
	Amount    float64   `db:"amount"`
	TxHash    string    `db:"tx_hash"`
	ClaimedAt time.Time `db:"claimed_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetUser(ctx context.Context, walletAddress string) (*entities.User, error) {
	return s.getUser(ctx, walletAddress, "")
}

func (s pg) GetUserForUpdate(ctx context.Context, walletAddress string) (*entities.User, error) {
	return s.getUser(ctx, walletAddress, "FOR UPDATE")
}

func (s pg) getUser(ctx context.Context, walletAddress, locking string) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u, fmt.Sprintf(`
			SELECT id, wallet_address, posts_count, claimable_rewards, created_at, updated_at
			FROM account
			WHERE wallet_address = $1 %s
		`, locking),
		walletAddress,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toUser(u), nil
}

func (s pg) CreateUser(ctx context.Context, u *entities.User) error {
	dto := userDTO{
		ID:               u.ID,
		WalletAddress:    u.WalletAddress,
		PostsCount:       u.PostsCount,
		ClaimableRewards: u.ClaimableRewards,
		CreatedAt:        u.CreatedAt.UTC(),
		UpdatedAt:        u.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO account(id, wallet_address, posts_count, claimable_rewards, created_at, updated_at)
			VALUES(:id, :wallet_address, :posts_count, :claimable_rewards, :created_at, :updated_at)
		`, dto,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) IncrementPostsCount(ctx context.Context, userID string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE account SET posts_count = posts_count + 1, updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddClaimableRewards(ctx context.Context, userID string, amount float64) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE account SET claimable_rewards = claimable_rewards + $2, updated_at = now() WHERE id = $1`,
		userID, amount,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ZeroClaimableRewards(ctx context.Context, userID string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE account SET claimable_rewards = 0, updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreateSubmission(ctx context.Context, sub *entities.Submission) error {
	dto := submissionDTO{
		ID:          sub.ID,
		Owner:       sub.Owner,
		URL:         sub.URL,
		Platform:    sub.Platform,
		Views:       sub.Views,
		Reward:      sub.Reward,
		Status:      string(sub.Status),
		SubmittedAt: sub.SubmittedAt.UTC(),
		UpdatedAt:   sub.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO submission(id, owner, url, platform, views, reward, status, submitted_at, updated_at)
			VALUES(:id, :owner, :url, :platform, :views, :reward, :status, :submitted_at, :updated_at)
		`, dto,
	); err != nil {
		if err, ok := err.(*pq.Error); ok {
			switch err.Code {
			case uniqueViolation:
				return storage.ErrAlreadyExists
			case foreignKeyViolation:
				return storage.ErrNotFound
			}
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetUserSubmissions(ctx context.Context, userID string) ([]*entities.Submission, error) {
	var subs []*submissionDTO

	if err := sqlx.SelectContext(ctx, s.ext, &subs, `
			SELECT id, owner, url, platform, views, reward, status, submitted_at, updated_at
			FROM submission
			WHERE owner = $1
			ORDER BY submitted_at DESC, id DESC
		`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Submission, len(subs))
	for i, v := range subs {
		out[i] = toSubmission(*v)
	}

	return out, nil
}

func (s pg) ListSubmissions(ctx context.Context, p *storage.ListSubmissionsParams) ([]*storage.SubmissionRow, error) {
	var rows []*submissionRowDTO

	if err := sqlx.SelectContext(ctx, s.ext, &rows, fmt.Sprintf(`
			SELECT s.id, s.owner, s.url, s.platform, s.views, s.reward, s.status, s.submitted_at, s.updated_at,
				a.wallet_address AS owner_address
			FROM submission s
			JOIN account a ON a.id = s.owner
			ORDER BY s.%s %s, s.id DESC
			LIMIT $1 OFFSET $2
		`, sortColumn(p.SortBy), sortDirection(p.OrderBy)),
		p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.SubmissionRow, len(rows))
	for i, v := range rows {
		out[i] = &storage.SubmissionRow{
			Submission:   *toSubmission(v.submissionDTO),
			OwnerAddress: v.OwnerAddress,
		}
	}

	return out, nil
}

func (s pg) CountSubmissions(ctx context.Context) (uint64, error) {
	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT COUNT(*) FROM submission`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) GetMeasurableSubmissions(ctx context.Context) ([]*entities.Submission, error) {
	var subs []*submissionDTO

	if err := sqlx.SelectContext(ctx, s.ext, &subs, `
			SELECT id, owner, url, platform, views, reward, status, submitted_at, updated_at
			FROM submission
			WHERE status <> 'rejected'
			ORDER BY submitted_at
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Submission, len(subs))
	for i, v := range subs {
		out[i] = toSubmission(*v)
	}

	return out, nil
}

func (s pg) UpdateSubmissionMetrics(ctx context.Context, id string, views int64, reward float64, status entities.Status) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE submission SET views = $2, reward = $3, status = $4, updated_at = now() WHERE id = $1`,
		id, views, reward, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreateViewMetric(ctx context.Context, m *entities.ViewMetric) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO view_metric(submission_id, views, date) VALUES($1, $2, $3)`,
		m.SubmissionID, m.Views, m.Date.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetLatestViewMetrics(ctx context.Context, submissionID ...string) (map[string]*entities.ViewMetric, error) {
	if len(submissionID) == 0 {
		return map[string]*entities.ViewMetric{}, nil
	}

	query, args, err := sqlx.In(`
			SELECT DISTINCT ON (submission_id) id, submission_id, views, date
			FROM view_metric
			WHERE submission_id IN (?)
			ORDER BY submission_id, date DESC, id DESC
		`, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var m []*viewMetricDTO

	if err := sqlx.SelectContext(ctx, s.ext, &m, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make(map[string]*entities.ViewMetric, len(m))
	for _, v := range m {
		out[v.SubmissionID] = &entities.ViewMetric{
			ID:           v.ID,
			SubmissionID: v.SubmissionID,
			Views:        v.Views,
			Date:         v.Date,
		}
	}

	return out, nil
}

func (s pg) GetUserTotals(ctx context.Context, userID string) (*storage.Totals, error) {
	var t struct {
		Views   int64   `db:"views"`
		Rewards float64 `db:"rewards"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &t, `
			SELECT COALESCE(SUM(views), 0) AS views, COALESCE(SUM(reward), 0) AS rewards
			FROM submission
			WHERE owner = $1
		`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &storage.Totals{
		Views:   t.Views,
		Rewards: t.Rewards,
	}, nil
}

func (s pg) CreateRewardClaim(ctx context.Context, c *entities.RewardClaim) error {
	dto := rewardClaimDTO{
		ID:        c.ID,
		Owner:     c.Owner,
		Amount:    c.Amount,
		TxHash:    c.TxHash,
		ClaimedAt: c.ClaimedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO reward_claim(id, owner, amount, tx_hash, claimed_at)
			VALUES(:id, :owner, :amount, :tx_hash, :claimed_at)
		`, dto,
	); err != nil {
		if err, ok := err.(*pq.Error); ok {
			switch err.Code {
			case uniqueViolation:
				return storage.ErrAlreadyExists
			case foreignKeyViolation:
				return storage.ErrNotFound
			}
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func toUser(u userDTO) *entities.User {
	return &entities.User{
		ID:               u.ID,
		WalletAddress:    u.WalletAddress,
		PostsCount:       u.PostsCount,
		ClaimableRewards: u.ClaimableRewards,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toSubmission(d submissionDTO) *entities.Submission {
	return &entities.Submission{
		ID:          d.ID,
		Owner:       d.Owner,
		URL:         d.URL,
		Platform:    d.Platform,
		Views:       d.Views,
		Reward:      d.Reward,
		Status:      entities.Status(d.Status),
		SubmittedAt: d.SubmittedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func sortColumn(s storage.SortType) string {
	switch s {
	case storage.SubmittedAtSortType, storage.UpdatedAtSortType, storage.ViewsSortType,
		storage.RewardSortType, storage.PlatformSortType, storage.StatusSortType, storage.URLSortType:
		return string(s)
	default:
		return string(storage.SubmittedAtSortType)
	}
}

func sortDirection(o storage.OrderType) string {
	if o == storage.AscendingOrder {
		return "ASC"
	}

	return "DESC"
}
