package service

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"time"

	"launchpad/config"
	"launchpad/internal/models"
	"launchpad/internal/repository"
	"launchpad/pkg/money"
	"launchpad/pkg/refcode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	maxCodeAttempts = 10
	maxListLimit    = 100
)

// MaxAccrual is the largest single earnings accrual accepted.
var MaxAccrual = decimal.NewFromInt(1000)

// ReferralService owns referral accounts, earnings accrual and claims.
type ReferralService struct {
	store    ReferralStore
	settings *ReferralSettings
	payout   PayoutExecutor
	metrics  Metrics
	logger   *zap.Logger

	minClaim        money.Lamports
	cooldown        time.Duration
	lockTTL         time.Duration
	transferTimeout time.Duration
	instanceID      string

	guard   *claimGuard
	creates singleflight.Group

	now     func() time.Time
	newCode func() string
	newID   func() string
}

func NewReferralService(
	cfg config.ReferralConfig,
	store ReferralStore,
	settings *ReferralSettings,
	payout PayoutExecutor,
	metrics Metrics,
	logger *zap.Logger,
) *ReferralService {
	return &ReferralService{
		store:           store,
		settings:        settings,
		payout:          payout,
		metrics:         metrics,
		logger:          logger,
		minClaim:        cfg.MinClaimAmount,
		cooldown:        cfg.ClaimCooldown,
		lockTTL:         cfg.ClaimLockTTL,
		transferTimeout: cfg.TransferTimeout,
		instanceID:      cfg.InstanceID,
		guard:           newClaimGuard(),
		now:             func() time.Time { return time.Now().UTC() },
		newCode:         refcode.Generate,
		newID:           uuid.NewString,
	}
}

func (s *ReferralService) Settings() *ReferralSettings { return s.settings }

// createResult is shared between coalesced get-or-create callers. Only the
// first caller to take it sees isNew.
type createResult struct {
	account *models.ReferralAccount
	isNew   bool
	taken   atomic.Bool
}

// GetOrCreateAccount returns userID's referral code, creating the account on
// first use. isNew is true for exactly one caller per user.
func (s *ReferralService) GetOrCreateAccount(ctx context.Context, userID string) (string, bool, error) {
	a, isNew, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return "", false, err
	}
	return a.ReferralCode, isNew, nil
}

func (s *ReferralService) getOrCreate(ctx context.Context, userID string) (*models.ReferralAccount, bool, error) {
	if userID == "" {
		return nil, false, ErrInvalidUser
	}
	a, err := s.store.GetAccount(ctx, userID)
	if err == nil {
		return a, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, storeError("get account", err)
	}

	v, err, _ := s.creates.Do(userID, func() (any, error) {
		a, isNew, err := s.createAccount(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &createResult{account: a, isNew: isNew}, nil
	})
	if err != nil {
		return nil, false, err
	}
	res := v.(*createResult)
	isNew := res.isNew && res.taken.CompareAndSwap(false, true)
	acc := *res.account
	return &acc, isNew, nil
}

// createAccount inserts a fresh account with a unique code. Losing an insert
// race to another creator of the same user returns the winner's row.
func (s *ReferralService) createAccount(ctx context.Context, userID string) (*models.ReferralAccount, bool, error) {
	collisions := 0
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.newCode()
		exists, err := s.store.CodeExists(ctx, code)
		if err != nil {
			return nil, false, storeError("check code", err)
		}
		if exists {
			collisions++
			continue
		}

		a := &models.ReferralAccount{UserID: userID, ReferralCode: code}
		insertErr := s.store.InsertAccount(ctx, a)
		if insertErr == nil {
			s.metrics.CodeGenerated(collisions)
			s.logger.Info("referral account created", zap.String("user_id", userID), zap.String("code", code), zap.Int("collisions", collisions))
			return a, true, nil
		}

		existing, err := s.store.GetAccount(ctx, userID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, storeError("get account", err)
		}
		taken, err := s.store.CodeExists(ctx, code)
		if err != nil {
			return nil, false, storeError("check code", err)
		}
		if !taken {
			return nil, false, storeError("insert account", insertErr)
		}
		collisions++
	}
	s.logger.Error("referral code space exhausted", zap.String("user_id", userID), zap.Int("attempts", maxCodeAttempts))
	return nil, false, newError(KindCodeExhaustion, nil, "could not generate a unique referral code after %d attempts", maxCodeAttempts)
}

// ApplyReferralCode links newUserID to the owner of code. A user can be
// referred once; the referrer's count moves with the link.
func (s *ReferralService) ApplyReferralCode(ctx context.Context, newUserID, code string) error {
	if !s.settings.Enabled() {
		return ErrSystemDisabled
	}
	if newUserID == "" {
		return ErrInvalidUser
	}
	code = refcode.Normalize(code)
	if !refcode.Valid(code) {
		return newError(KindInvalidCode, nil, "referral code %q not found", code)
	}
	owner, err := s.store.GetAccountByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return newError(KindInvalidCode, nil, "referral code %q not found", code)
	}
	if err != nil {
		return storeError("get account by code", err)
	}
	if owner.UserID == newUserID {
		return ErrSelfReferral
	}

	a, _, err := s.getOrCreate(ctx, newUserID)
	if err != nil {
		return err
	}
	if a.ReferredBy != nil && *a.ReferredBy != "" {
		return ErrAlreadyReferred
	}
	applied, err := s.store.SetReferrer(ctx, newUserID, owner.UserID, code)
	if err != nil {
		return storeError("set referrer", err)
	}
	if !applied {
		return ErrAlreadyReferred
	}
	s.metrics.ReferralApplied()
	s.logger.Info("referral code applied", zap.String("user_id", newUserID), zap.String("referrer_id", owner.UserID), zap.String("code", code))
	return nil
}

// CalculateReferrerShare returns the referrer's cut of fee, rounded to 9
// decimal places. It is zero while the program is disabled. Negative fees
// and fees too large to represent are InvalidAmount.
func (s *ReferralService) CalculateReferrerShare(fee decimal.Decimal) (decimal.Decimal, error) {
	if !s.settings.Enabled() {
		return decimal.Zero, nil
	}
	if fee.IsNegative() {
		return decimal.Zero, newError(KindInvalidAmount, nil, "fee must not be negative, got %s", fee)
	}
	l, err := money.FromDecimal(fee)
	if err != nil {
		return decimal.Zero, newError(KindInvalidAmount, err, "fee %s is out of range", fee)
	}
	return money.Share(l, s.settings.SharePercent()).Decimal(), nil
}

// ParseAmount turns a float from an outer surface into a decimal amount,
// rejecting NaN and infinities.
func ParseAmount(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, newError(KindInvalidAmount, money.ErrNotFinite, "amount must be a finite number")
	}
	return decimal.NewFromFloat(f), nil
}

// AddReferralEarnings credits amount to referrerID's pending and total
// earnings and records it in the ledger, atomically.
func (s *ReferralService) AddReferralEarnings(ctx context.Context, referrerID string, amount decimal.Decimal, sourceUserID, operationType string) (*models.ReferralEarning, error) {
	if !s.settings.Enabled() {
		return nil, ErrSystemDisabled
	}
	if !amount.IsPositive() || amount.GreaterThan(MaxAccrual) {
		return nil, newError(KindInvalidAmount, nil, "amount must be greater than 0 and at most %s, got %s", MaxAccrual, amount)
	}
	share, err := money.FromDecimal(amount)
	if err != nil {
		return nil, newError(KindInvalidAmount, err, "amount %s is out of range", amount)
	}
	if share <= 0 {
		return nil, newError(KindInvalidAmount, nil, "amount %s rounds to zero", amount)
	}
	fee, err := money.Gross(share, s.settings.SharePercent())
	if err != nil {
		return nil, newError(KindInvalidAmount, err, "fee for share %s is out of range", amount)
	}
	if fee == 0 {
		fee = share * 2
	}

	entry := &models.ReferralEarning{
		ReferrerID:    referrerID,
		SourceUserID:  sourceUserID,
		OperationType: operationType,
		FeeAmount:     fee,
		ReferrerShare: share,
		CreatedAt:     s.now(),
	}
	if err := s.store.AddEarnings(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindReferrerNotFound, err, "referrer %s not found", referrerID)
		}
		return nil, storeError("add earnings", err)
	}
	s.metrics.EarningsAccrued(operationType, share)
	s.logger.Info("referral earnings accrued",
		zap.String("referrer_id", referrerID),
		zap.String("source_user_id", sourceUserID),
		zap.String("operation", operationType),
		zap.Stringer("amount", share),
	)
	return entry, nil
}

// Stats is a user's referral dashboard.
type Stats struct {
	UserID             string         `json:"user_id"`
	ReferralCode       string         `json:"referral_code"`
	ReferredBy         *string        `json:"referred_by,omitempty"`
	ReferralCount      int            `json:"referral_count"`
	PendingEarnings    money.Lamports `json:"pending_earnings"`
	TotalEarnings      money.Lamports `json:"total_earnings"`
	TotalClaimed       money.Lamports `json:"total_claimed"`
	ClaimCount         int            `json:"claim_count"`
	LastClaimAt        *time.Time     `json:"last_claim_at"`
	LastClaimSignature string         `json:"last_claim_signature,omitempty"`
	MinClaimAmount     money.Lamports `json:"min_claim_amount"`
	CooldownEndsAt     *time.Time     `json:"cooldown_ends_at"`
	CooldownRemaining  time.Duration  `json:"-"`
	CanClaim           bool           `json:"can_claim"`
	ClaimInProgress    bool           `json:"claim_in_progress"`
	Enabled            bool           `json:"enabled"`
	SharePercent       int            `json:"share_percent"`
}

// GetStats returns userID's dashboard, creating the account on first use.
func (s *ReferralService) GetStats(ctx context.Context, userID string) (*Stats, error) {
	a, _, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	end, remaining := s.cooldownWindow(a, s.now())
	return &Stats{
		UserID:             a.UserID,
		ReferralCode:       a.ReferralCode,
		ReferredBy:         a.ReferredBy,
		ReferralCount:      a.ReferralCount,
		PendingEarnings:    a.PendingEarnings,
		TotalEarnings:      a.TotalEarnings,
		TotalClaimed:       a.TotalClaimed,
		ClaimCount:         a.ClaimCount,
		LastClaimAt:        a.LastClaimAt,
		LastClaimSignature: a.LastClaimSignature,
		MinClaimAmount:     s.minClaim,
		CooldownEndsAt:     end,
		CooldownRemaining:  remaining,
		CanClaim:           a.PendingEarnings >= s.minClaim && remaining == 0,
		ClaimInProgress:    s.guard.busy(userID),
		Enabled:            s.settings.Enabled(),
		SharePercent:       s.settings.SharePercent(),
	}, nil
}

// cooldownWindow returns when the claim cooldown ends and how much of it is
// left at now. A user who never claimed has no window.
func (s *ReferralService) cooldownWindow(a *models.ReferralAccount, now time.Time) (*time.Time, time.Duration) {
	if a.LastClaimAt == nil {
		return nil, 0
	}
	end := a.LastClaimAt.UTC().Add(s.cooldown)
	if !now.Before(end) {
		return &end, 0
	}
	return &end, end.Sub(now)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *ReferralService) ListEarnings(ctx context.Context, userID string, limit, offset int) ([]models.ReferralEarning, error) {
	limit, offset = clampPage(limit, offset)
	list, err := s.store.ListEarnings(ctx, userID, limit, offset)
	if err != nil {
		return nil, storeError("list earnings", err)
	}
	return list, nil
}

func (s *ReferralService) ListClaims(ctx context.Context, userID string, limit, offset int) ([]models.ReferralClaim, error) {
	limit, offset = clampPage(limit, offset)
	list, err := s.store.ListClaims(ctx, userID, limit, offset)
	if err != nil {
		return nil, storeError("list claims", err)
	}
	return list, nil
}

func (s *ReferralService) ListReferred(ctx context.Context, userID string, limit, offset int) ([]models.ReferralAccount, error) {
	limit, offset = clampPage(limit, offset)
	list, err := s.store.ListReferred(ctx, userID, limit, offset)
	if err != nil {
		return nil, storeError("list referred", err)
	}
	return list, nil
}
