//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/postmint-net/midas/internal/entities"
	"github.com/postmint-net/midas/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM reward_claim`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM view_metric`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM submission`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM account`)
	require.NoError(t, err)
}

var testDate = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

func createUser(t *testing.T, id, walletAddress string) *entities.User {
	u := &entities.User{
		ID:            id,
		WalletAddress: walletAddress,
		CreatedAt:     testDate,
		UpdatedAt:     testDate,
	}
	require.NoError(t, s.CreateUser(ctx, u))

	return u
}

func createSubmission(t *testing.T, id, owner, url string) *entities.Submission {
	sub := &entities.Submission{
		ID:          id,
		Owner:       owner,
		URL:         url,
		Platform:    "Twitter",
		Status:      entities.StatusPending,
		SubmittedAt: testDate,
		UpdatedAt:   testDate,
	}
	require.NoError(t, s.CreateSubmission(ctx, sub))

	return sub
}

func TestPg_CreateUser(t *testing.T) {
	defer cleanup(t)

	u := createUser(t, "1", "wallet")

	got, err := s.GetUser(ctx, "wallet")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.WalletAddress, got.WalletAddress)
	assert.Equal(t, testDate, got.CreatedAt.UTC())

	assert.True(t, errors.Is(s.CreateUser(ctx, &entities.User{
		ID:            "2",
		WalletAddress: "wallet",
		CreatedAt:     testDate,
		UpdatedAt:     testDate,
	}), storage.ErrAlreadyExists))
}

func TestPg_GetUser_notFound(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetUser(ctx, "wallet")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.GetUserForUpdate(ctx, "wallet")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_IncrementPostsCount(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")

	require.NoError(t, s.IncrementPostsCount(ctx, "1"))
	require.NoError(t, s.IncrementPostsCount(ctx, "1"))

	u, err := s.GetUser(ctx, "wallet")
	require.NoError(t, err)
	assert.EqualValues(t, 2, u.PostsCount)

	assert.True(t, errors.Is(s.IncrementPostsCount(ctx, "unknown"), storage.ErrNotFound))
}

func TestPg_AddClaimableRewards(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")

	require.NoError(t, s.AddClaimableRewards(ctx, "1", 0.5))
	require.NoError(t, s.AddClaimableRewards(ctx, "1", 0.25))

	u, err := s.GetUser(ctx, "wallet")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, u.ClaimableRewards, 1e-9)

	require.NoError(t, s.ZeroClaimableRewards(ctx, "1"))

	u, err = s.GetUser(ctx, "wallet")
	require.NoError(t, err)
	assert.Zero(t, u.ClaimableRewards)

	assert.True(t, errors.Is(s.AddClaimableRewards(ctx, "unknown", 1), storage.ErrNotFound))
	assert.True(t, errors.Is(s.ZeroClaimableRewards(ctx, "unknown"), storage.ErrNotFound))
}

func TestPg_CreateSubmission(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")
	createSubmission(t, "s1", "1", "https://twitter.com/a/status/1")

	assert.True(t, errors.Is(s.CreateSubmission(ctx, &entities.Submission{
		ID:          "s2",
		Owner:       "1",
		URL:         "https://twitter.com/a/status/1",
		Platform:    "Twitter",
		Status:      entities.StatusPending,
		SubmittedAt: testDate,
		UpdatedAt:   testDate,
	}), storage.ErrAlreadyExists))

	assert.True(t, errors.Is(s.CreateSubmission(ctx, &entities.Submission{
		ID:          "s3",
		Owner:       "unknown",
		URL:         "https://twitter.com/a/status/2",
		Platform:    "Twitter",
		Status:      entities.StatusPending,
		SubmittedAt: testDate,
		UpdatedAt:   testDate,
	}), storage.ErrNotFound))
}

func TestPg_GetUserSubmissions(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")
	createUser(t, "2", "wallet2")

	first := &entities.Submission{
		ID:          "s1",
		Owner:       "1",
		URL:         "https://twitter.com/a/status/1",
		Platform:    "Twitter",
		Status:      entities.StatusPending,
		SubmittedAt: testDate,
		UpdatedAt:   testDate,
	}
	require.NoError(t, s.CreateSubmission(ctx, first))

	second := &entities.Submission{
		ID:          "s2",
		Owner:       "1",
		URL:         "https://twitter.com/a/status/2",
		Platform:    "Twitter",
		Status:      entities.StatusPending,
		SubmittedAt: testDate.Add(time.Hour),
		UpdatedAt:   testDate.Add(time.Hour),
	}
	require.NoError(t, s.CreateSubmission(ctx, second))

	createSubmission(t, "s3", "2", "https://twitter.com/b/status/1")

	subs, err := s.GetUserSubmissions(ctx, "1")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	// newest first
	assert.Equal(t, "s2", subs[0].ID)
	assert.Equal(t, "s1", subs[1].ID)
}

func TestPg_ListSubmissions(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")
	createUser(t, "2", "wallet2")

	for i, views := range []int64{30, 10, 20} {
		sub := &entities.Submission{
			ID:          fmt.Sprintf("s%d", i),
			Owner:       "1",
			URL:         fmt.Sprintf("https://twitter.com/a/status/%d", i),
			Platform:    "Twitter",
			Views:       views,
			Status:      entities.StatusApproved,
			SubmittedAt: testDate.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   testDate,
		}
		require.NoError(t, s.CreateSubmission(ctx, sub))
	}
	createSubmission(t, "s3", "2", "https://twitter.com/b/status/1")

	rows, err := s.ListSubmissions(ctx, &storage.ListSubmissionsParams{
		SortBy:  storage.ViewsSortType,
		OrderBy: storage.AscendingOrder,
		Limit:   2,
		Offset:  0,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "s3", rows[0].ID)
	assert.Equal(t, "wallet2", rows[0].OwnerAddress)
	assert.Equal(t, "s1", rows[1].ID)

	rows, err = s.ListSubmissions(ctx, &storage.ListSubmissionsParams{
		SortBy:  storage.SubmittedAtSortType,
		OrderBy: storage.DescendingOrder,
		Limit:   10,
		Offset:  2,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	total, err := s.CountSubmissions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestPg_GetMeasurableSubmissions(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")
	createSubmission(t, "s1", "1", "https://twitter.com/a/status/1")
	createSubmission(t, "s2", "1", "https://twitter.com/a/status/2")

	require.NoError(t, s.UpdateSubmissionMetrics(ctx, "s2", 0, 0, entities.StatusRejected))

	subs, err := s.GetMeasurableSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "s1", subs[0].ID)
}

func TestPg_UpdateSubmissionMetrics(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")
	createSubmission(t, "s1", "1", "https://twitter.com/a/status/1")

	require.NoError(t, s.UpdateSubmissionMetrics(ctx, "s1", 100, 0.001, entities.StatusApproved))

	subs, err := s.GetUserSubmissions(ctx, "1")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.EqualValues(t, 100, subs[0].Views)
	assert.InDelta(t, 0.001, subs[0].Reward, 1e-9)
	assert.Equal(t, entities.StatusApproved, subs[0].Status)

	assert.True(t, errors.Is(
		s.UpdateSubmissionMetrics(ctx, "unknown", 1, 1, entities.StatusApproved),
		storage.ErrNotFound,
	))
}

func TestPg_GetLatestViewMetrics(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")
	createSubmission(t, "s1", "1", "https://twitter.com/a/status/1")
	createSubmission(t, "s2", "1", "https://twitter.com/a/status/2")

	require.NoError(t, s.CreateViewMetric(ctx, &entities.ViewMetric{SubmissionID: "s1", Views: 10, Date: testDate}))
	require.NoError(t, s.CreateViewMetric(ctx, &entities.ViewMetric{SubmissionID: "s1", Views: 50, Date: testDate.Add(time.Hour)}))
	require.NoError(t, s.CreateViewMetric(ctx, &entities.ViewMetric{SubmissionID: "s2", Views: 5, Date: testDate}))

	metrics, err := s.GetLatestViewMetrics(ctx, "s1", "s2", "s3")
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.EqualValues(t, 50, metrics["s1"].Views)
	assert.EqualValues(t, 5, metrics["s2"].Views)

	metrics, err = s.GetLatestViewMetrics(ctx)
	require.NoError(t, err)
	assert.Empty(t, metrics)

	assert.True(t, errors.Is(
		s.CreateViewMetric(ctx, &entities.ViewMetric{SubmissionID: "unknown", Views: 1, Date: testDate}),
		storage.ErrNotFound,
	))
}

func TestPg_GetUserTotals(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")
	createSubmission(t, "s1", "1", "https://twitter.com/a/status/1")
	createSubmission(t, "s2", "1", "https://twitter.com/a/status/2")

	require.NoError(t, s.UpdateSubmissionMetrics(ctx, "s1", 100, 0.001, entities.StatusApproved))
	require.NoError(t, s.UpdateSubmissionMetrics(ctx, "s2", 200, 0.002, entities.StatusApproved))

	totals, err := s.GetUserTotals(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 300, totals.Views)
	assert.InDelta(t, 0.003, totals.Rewards, 1e-9)

	totals, err = s.GetUserTotals(ctx, "unknown")
	require.NoError(t, err)
	assert.Zero(t, totals.Views)
	assert.Zero(t, totals.Rewards)
}

func TestPg_CreateRewardClaim(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1", "wallet")

	require.NoError(t, s.CreateRewardClaim(ctx, &entities.RewardClaim{
		ID:        "c1",
		Owner:     "1",
		Amount:    0.5,
		TxHash:    "tx_1_abcdefghi",
		ClaimedAt: testDate,
	}))

	assert.True(t, errors.Is(s.CreateRewardClaim(ctx, &entities.RewardClaim{
		ID:        "c2",
		Owner:     "unknown",
		Amount:    0.5,
		TxHash:    "tx_2_abcdefghi",
		ClaimedAt: testDate,
	}), storage.ErrNotFound))
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		createUserErr := tx.CreateUser(ctx, &entities.User{
			ID:            "1",
			WalletAddress: "wallet",
			CreatedAt:     testDate,
			UpdatedAt:     testDate,
		})
		require.NoError(t, createUserErr)

		return tx.IncrementPostsCount(ctx, "1")
	}))

	u, err := s.GetUser(ctx, "wallet")
	require.NoError(t, err)
	assert.EqualValues(t, 1, u.PostsCount)

	rollbackErr := errors.New("test")
	err = s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.CreateUser(ctx, &entities.User{
			ID:            "2",
			WalletAddress: "wallet2",
			CreatedAt:     testDate,
			UpdatedAt:     testDate,
		}))

		return rollbackErr
	})
	assert.True(t, errors.Is(err, rollbackErr))

	_, err = s.GetUser(ctx, "wallet2")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}
