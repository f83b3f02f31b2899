package service

import (
	"context"
	"testing"
	"time"

	"launchpad/config"
	"launchpad/internal/domain"
	"launchpad/internal/models"
	"launchpad/pkg/payout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestClaimReconcilerRunOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fund(t, "alice", "0.02")
	svc := f.newService(t, f.repo, payout.NewStubExecutor())

	ok, err := f.repo.ReservePending(ctx, "alice", lamports("0.02"))
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, f.repo.CreateClaim(ctx, &models.ReferralClaim{
		ClaimID:            "orphan",
		UserID:             "alice",
		Amount:             lamports("0.02"),
		DestinationAddress: testDestination,
		Status:             domain.ClaimStatusPendingTransfer,
		CreatedAt:          f.clock.Now().Add(-time.Hour),
	}))

	r, err := NewClaimReconciler(svc, config.ReconcilerConfig{
		Enabled:    true,
		Interval:   time.Hour,
		StaleAfter: 5 * time.Minute,
		BatchSize:  10,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, r.Start())
	t.Cleanup(func() { _ = r.Stop() })

	n, err := r.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, lamports("0.02"), f.account(t, "alice").PendingEarnings)

	c, err := f.repo.GetClaim(ctx, "orphan")
	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusFailed, c.Status)
}
