package models

import (
	"time"

	"launchpad/pkg/money"
)

// ClaimLockOwnerSize is the width of referral_accounts.claim_lock_owner.
const ClaimLockOwnerSize = 128

// ReferralAccount is the per-user referral row: the user's own code, who
// referred them, and their running earnings totals.
// Balances here are authoritative; the earnings ledger is an audit trail.
type ReferralAccount struct {
	ID                 uint           `gorm:"primaryKey" json:"-"`
	UserID             string         `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	ReferralCode       string         `gorm:"uniqueIndex;size:16;not null" json:"referral_code"`
	ReferredBy         *string        `gorm:"size:64;index" json:"referred_by,omitempty"` // set once, never cleared
	ReferredByCode     *string        `gorm:"size:16" json:"referred_by_code,omitempty"`  // code used at sign-up
	PendingEarnings    money.Lamports `gorm:"not null;default:0" json:"pending_earnings"` // earned, not yet claimed
	TotalEarnings      money.Lamports `gorm:"not null;default:0" json:"total_earnings"`
	TotalClaimed       money.Lamports `gorm:"not null;default:0" json:"total_claimed"`
	ReferralCount      int            `gorm:"not null;default:0" json:"referral_count"`
	ClaimCount         int            `gorm:"not null;default:0" json:"claim_count"`
	LastClaimAt        *time.Time     `json:"last_claim_at"`
	LastClaimSignature string         `gorm:"size:128" json:"last_claim_signature"`
	ClaimLockOwner     *string        `gorm:"size:128" json:"-"`
	ClaimLockUntil     *time.Time     `json:"-"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (ReferralAccount) TableName() string { return "referral_accounts" }

// ReferralEarning is one append-only accrual event.
type ReferralEarning struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ReferrerID    string         `gorm:"size:64;not null;index" json:"referrer_id"`
	SourceUserID  string         `gorm:"size:64;not null;index" json:"source_user_id"`
	OperationType string         `gorm:"size:32;not null" json:"operation_type"`
	FeeAmount     money.Lamports `gorm:"not null" json:"fee_amount"`
	ReferrerShare money.Lamports `gorm:"not null" json:"referrer_share"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
}

func (ReferralEarning) TableName() string { return "referral_earnings" }

// ReferralClaim records one payout attempt. It is created in
// pending_transfer and moves once to success or failed.
type ReferralClaim struct {
	ID                 uint           `gorm:"primaryKey" json:"-"`
	ClaimID            string         `gorm:"uniqueIndex;size:64;not null" json:"claim_id"`
	UserID             string         `gorm:"size:64;not null;index" json:"user_id"`
	Amount             money.Lamports `gorm:"not null" json:"amount"`
	DestinationAddress string         `gorm:"size:64;not null" json:"destination_address"`
	TxSignature        string         `gorm:"size:128" json:"tx_signature"`
	Status             string         `gorm:"size:20;not null;index" json:"status"`
	FailureReason      string         `gorm:"size:255" json:"failure_reason,omitempty"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	SettledAt          *time.Time     `json:"settled_at"`
}

func (ReferralClaim) TableName() string { return "referral_claims" }
