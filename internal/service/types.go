package service

import (
	"context"
	"time"

	"launchpad/internal/models"
	"launchpad/pkg/money"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ReferralStore is the persistence the referral engine needs. It is the
	// single source of truth; nothing that gates money movement is cached.
	ReferralStore interface {
		GetAccount(ctx context.Context, userID string) (*models.ReferralAccount, error)
		GetAccountByCode(ctx context.Context, code string) (*models.ReferralAccount, error)
		CodeExists(ctx context.Context, code string) (bool, error)
		InsertAccount(ctx context.Context, a *models.ReferralAccount) error
		SetReferrer(ctx context.Context, userID, referrerID, code string) (bool, error)
		AddEarnings(ctx context.Context, entry *models.ReferralEarning) error
		ReservePending(ctx context.Context, userID string, expected money.Lamports) (bool, error)
		RestorePending(ctx context.Context, userID string, amount money.Lamports) error
		AcquireClaimLock(ctx context.Context, userID, owner string, now time.Time, ttl time.Duration) (bool, error)
		ReleaseClaimLock(ctx context.Context, userID, owner string) error
		CreateClaim(ctx context.Context, c *models.ReferralClaim) error
		GetClaim(ctx context.Context, claimID string) (*models.ReferralClaim, error)
		FinalizeClaim(ctx context.Context, userID, claimID string, amount money.Lamports, signature string, at time.Time) error
		FailClaim(ctx context.Context, userID, claimID string, amount money.Lamports, reason string) error
		StaleClaims(ctx context.Context, cutoff time.Time, limit int) ([]models.ReferralClaim, error)
		ListEarnings(ctx context.Context, referrerID string, limit, offset int) ([]models.ReferralEarning, error)
		ListClaims(ctx context.Context, userID string, limit, offset int) ([]models.ReferralClaim, error)
		ListReferred(ctx context.Context, referrerID string, limit, offset int) ([]models.ReferralAccount, error)
	}
	SettingStore interface {
		Get(ctx context.Context, key string) (string, error)
		Set(ctx context.Context, key, value string) error
	}
	PayoutExecutor interface {
		Transfer(ctx context.Context, destination string, amount money.Lamports, claimID string) (string, error)
	}
	Metrics interface {
		CodeGenerated(collisions int)
		ReferralApplied()
		EarningsAccrued(operationType string, amount money.Lamports)
		ClaimFinished(outcome string, amount money.Lamports, started time.Time)
	}
)
