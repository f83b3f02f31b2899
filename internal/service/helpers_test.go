package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"launchpad/config"
	"launchpad/internal/database/dbtest"
	"launchpad/internal/metrics"
	"launchpad/internal/models"
	"launchpad/internal/repository"
	"launchpad/pkg/money"
	"launchpad/pkg/payout"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testDestination = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

func testReferralConfig() config.ReferralConfig {
	return config.ReferralConfig{
		Enabled:         true,
		SharePercent:    50,
		MinClaimAmount:  10_000_000, // 0.01
		ClaimCooldown:   time.Hour,
		ClaimLockTTL:    2 * time.Minute,
		TransferTimeout: time.Second,
		InstanceID:      "test",
	}
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	svc      *ReferralService
	repo     *repository.ReferralRepository
	settings *repository.SettingRepository
	payout   *MockPayoutExecutor
	clock    *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db := dbtest.New(t)
	repo := repository.NewReferralRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	exec := NewMockPayoutExecutor(ctrl)
	f := &fixture{
		repo:     repo,
		settings: settingRepo,
		payout:   exec,
		clock:    &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.svc = f.newService(t, repo, exec)
	return f
}

// newService builds another service over the same store, as a second
// process would.
func (f *fixture) newService(t *testing.T, store ReferralStore, exec PayoutExecutor) *ReferralService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	cfg := testReferralConfig()
	settings := NewReferralSettings(cfg, f.settings, logger)
	svc := NewReferralService(cfg, store, settings, exec, metrics.NewReferral(), logger)
	svc.now = f.clock.Now
	return svc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (f *fixture) account(t *testing.T, userID string) *models.ReferralAccount {
	t.Helper()
	a, err := f.repo.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	return a
}

// fund creates userID's account and accrues amount to it.
func (f *fixture) fund(t *testing.T, userID, amount string) {
	t.Helper()
	ctx := context.Background()
	_, _, err := f.svc.GetOrCreateAccount(ctx, userID)
	require.NoError(t, err)
	_, err = f.svc.AddReferralEarnings(ctx, userID, dec(amount), "trader", "swap")
	require.NoError(t, err)
}

// checkingExecutor adds status lookups to a mocked executor.
type checkingExecutor struct {
	*MockPayoutExecutor
	status    payout.Status
	signature string
	err       error
}

func (c *checkingExecutor) TransferStatus(ctx context.Context, claimID string) (payout.Status, string, error) {
	return c.status, c.signature, c.err
}

func timeoutError(claimID string) error {
	return &payout.TransferError{ClaimID: claimID, Reason: "request timed out", Err: context.DeadlineExceeded}
}

func lamports(s string) money.Lamports {
	l, err := money.FromDecimal(dec(s))
	if err != nil {
		panic(err)
	}
	return l
}
