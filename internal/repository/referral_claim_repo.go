package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"launchpad/internal/domain"
	"launchpad/internal/models"
	"launchpad/pkg/money"

	"gorm.io/gorm"
)

// ErrClaimSettled means the claim already left pending_transfer.
var ErrClaimSettled = errors.New("claim already settled")

func (r *ReferralRepository) CreateClaim(ctx context.Context, c *models.ReferralClaim) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create claim: %w", err)
	}
	return nil
}

func (r *ReferralRepository) GetClaim(ctx context.Context, claimID string) (*models.ReferralClaim, error) {
	var c models.ReferralClaim
	if err := r.db.WithContext(ctx).Where("claim_id = ?", claimID).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func settleClaim(tx *gorm.DB, claimID, status, signature, reason string, at time.Time) error {
	updates := map[string]any{"status": status, "updated_at": at}
	if signature != "" {
		updates["tx_signature"] = signature
	}
	if reason != "" {
		if len(reason) > 255 {
			reason = reason[:255]
		}
		updates["failure_reason"] = reason
	}
	if status != domain.ClaimStatusPendingTransfer {
		updates["settled_at"] = at
	}
	res := tx.Model(&models.ReferralClaim{}).
		Where("claim_id = ? AND status = ?", claimID, domain.ClaimStatusPendingTransfer).
		UpdateColumns(updates)
	if res.Error != nil {
		return fmt.Errorf("update claim %s: %w", claimID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrClaimSettled
	}
	return nil
}

// FinalizeClaim marks the claim successful and books the payout on the
// account in one transaction.
func (r *ReferralRepository) FinalizeClaim(ctx context.Context, userID, claimID string, amount money.Lamports, signature string, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := settleClaim(tx, claimID, domain.ClaimStatusSuccess, signature, "", at); err != nil {
			return err
		}
		res := tx.Model(&models.ReferralAccount{}).
			Where("user_id = ?", userID).
			UpdateColumns(map[string]any{
				"total_claimed":        gorm.Expr("total_claimed + ?", amount),
				"claim_count":          gorm.Expr("claim_count + 1"),
				"last_claim_at":        at,
				"last_claim_signature": signature,
				"updated_at":           at,
			})
		if res.Error != nil {
			return fmt.Errorf("book claim on account: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// FailClaim marks the claim failed and adds its amount back to pending in one
// transaction, so a claim is refunded at most once.
func (r *ReferralRepository) FailClaim(ctx context.Context, userID, claimID string, amount money.Lamports, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := settleClaim(tx, claimID, domain.ClaimStatusFailed, "", reason, time.Now().UTC()); err != nil {
			return err
		}
		res := tx.Model(&models.ReferralAccount{}).
			Where("user_id = ?", userID).
			UpdateColumn("pending_earnings", gorm.Expr("pending_earnings + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("restore pending earnings: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ListClaims returns a user's claims, newest first.
func (r *ReferralRepository) ListClaims(ctx context.Context, userID string, limit, offset int) ([]models.ReferralClaim, error) {
	var list []models.ReferralClaim
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}

// StaleClaims returns claims still pending_transfer that were created before cutoff.
func (r *ReferralRepository) StaleClaims(ctx context.Context, cutoff time.Time, limit int) ([]models.ReferralClaim, error) {
	var list []models.ReferralClaim
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", domain.ClaimStatusPendingTransfer, cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
