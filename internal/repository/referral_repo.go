package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"launchpad/internal/models"
	"launchpad/pkg/money"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// GetAccount returns the referral account owned by userID, or ErrNotFound.
func (r *ReferralRepository) GetAccount(ctx context.Context, userID string) (*models.ReferralAccount, error) {
	var a models.ReferralAccount
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&a).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

// GetAccountByCode returns the account whose referral code is code.
func (r *ReferralRepository) GetAccountByCode(ctx context.Context, code string) (*models.ReferralAccount, error) {
	var a models.ReferralAccount
	if err := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&a).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *ReferralRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ReferralAccount{}).Where("referral_code = ?", code).Count(&count).Error
	return count > 0, err
}

// InsertAccount creates a new account. A clash on user_id or referral_code
// comes back as ErrDuplicate when the driver can tell.
func (r *ReferralRepository) InsertAccount(ctx context.Context, a *models.ReferralAccount) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert referral account: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert referral account: %w", err)
	}
	return nil
}

// UpdateAccountConditional applies updates to userID's row only if every
// column in expected still holds the given value (nil means IS NULL).
// It returns the number of rows changed; zero means the guard failed.
func (r *ReferralRepository) UpdateAccountConditional(ctx context.Context, userID string, expected, updates map[string]any) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.ReferralAccount{}).Where("user_id = ?", userID)
	for col, v := range expected {
		q = q.Where(clause.Eq{Column: clause.Column{Name: col}, Value: v})
	}
	res := q.Updates(updates)
	return res.RowsAffected, res.Error
}

// ReservePending zeroes the pending balance if it still equals expected.
func (r *ReferralRepository) ReservePending(ctx context.Context, userID string, expected money.Lamports) (bool, error) {
	n, err := r.UpdateAccountConditional(ctx, userID,
		map[string]any{"pending_earnings": expected},
		map[string]any{"pending_earnings": money.Lamports(0)},
	)
	if err != nil {
		return false, fmt.Errorf("reserve pending earnings: %w", err)
	}
	return n == 1, nil
}

// RestorePending adds amount back onto the pending balance. It never
// overwrites, so accruals that landed meanwhile are kept.
func (r *ReferralRepository) RestorePending(ctx context.Context, userID string, amount money.Lamports) error {
	res := r.db.WithContext(ctx).Model(&models.ReferralAccount{}).
		Where("user_id = ?", userID).
		UpdateColumn("pending_earnings", gorm.Expr("pending_earnings + ?", amount))
	if res.Error != nil {
		return fmt.Errorf("restore pending earnings: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetReferrer links userID to referrerID once. It returns false when userID
// already had a referrer. The referrer's count moves in the same transaction.
func (r *ReferralRepository) SetReferrer(ctx context.Context, userID, referrerID, code string) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ReferralAccount{}).
			Where("user_id = ? AND (referred_by IS NULL OR referred_by = '')", userID).
			Updates(map[string]any{"referred_by": referrerID, "referred_by_code": code})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		res = tx.Model(&models.ReferralAccount{}).
			Where("user_id = ?", referrerID).
			UpdateColumn("referral_count", gorm.Expr("referral_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("referrer %s: %w", referrerID, ErrNotFound)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("set referrer: %w", err)
	}
	return applied, nil
}

// AddEarnings credits entry.ReferrerShare to the referrer's pending and total
// earnings and appends entry to the ledger in one transaction.
func (r *ReferralRepository) AddEarnings(ctx context.Context, entry *models.ReferralEarning) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ReferralAccount{}).
			Where("user_id = ?", entry.ReferrerID).
			UpdateColumns(map[string]any{
				"pending_earnings": gorm.Expr("pending_earnings + ?", entry.ReferrerShare),
				"total_earnings":   gorm.Expr("total_earnings + ?", entry.ReferrerShare),
				"updated_at":       time.Now().UTC(),
			})
		if res.Error != nil {
			return fmt.Errorf("credit earnings: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("append earnings ledger: %w", err)
		}
		return nil
	})
}

// AcquireClaimLock takes the per-user claim lease if it is free or expired.
func (r *ReferralRepository) AcquireClaimLock(ctx context.Context, userID, owner string, now time.Time, ttl time.Duration) (bool, error) {
	until := now.Add(ttl)
	res := r.db.WithContext(ctx).Model(&models.ReferralAccount{}).
		Where("user_id = ? AND (claim_lock_until IS NULL OR claim_lock_until < ?)", userID, now).
		UpdateColumns(map[string]any{"claim_lock_owner": owner, "claim_lock_until": until})
	if res.Error != nil {
		return false, fmt.Errorf("acquire claim lock: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ReleaseClaimLock drops the lease if owner still holds it.
func (r *ReferralRepository) ReleaseClaimLock(ctx context.Context, userID, owner string) error {
	res := r.db.WithContext(ctx).Model(&models.ReferralAccount{}).
		Where("user_id = ? AND claim_lock_owner = ?", userID, owner).
		UpdateColumns(map[string]any{"claim_lock_owner": nil, "claim_lock_until": nil})
	if res.Error != nil {
		return fmt.Errorf("release claim lock: %w", res.Error)
	}
	return nil
}

// ListEarnings returns the referrer's ledger, newest first.
func (r *ReferralRepository) ListEarnings(ctx context.Context, referrerID string, limit, offset int) ([]models.ReferralEarning, error) {
	var list []models.ReferralEarning
	err := r.db.WithContext(ctx).Where("referrer_id = ?", referrerID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

// ListReferred returns the accounts referred by referrerID, newest first.
func (r *ReferralRepository) ListReferred(ctx context.Context, referrerID string, limit, offset int) ([]models.ReferralAccount, error) {
	var list []models.ReferralAccount
	err := r.db.WithContext(ctx).Where("referred_by = ?", referrerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}
