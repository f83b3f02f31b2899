package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Claim statuses. A claim starts in pending_transfer and settles exactly once.
const (
	ClaimStatusPendingTransfer = "pending_transfer"
	ClaimStatusSuccess         = "success"
	ClaimStatusFailed          = "failed"
)

// Fee-bearing operations that accrue referral earnings.
const (
	OperationTokenLaunch = "token_launch"
	OperationSwap        = "swap"
	OperationBoost       = "boost"
	OperationVote        = "vote"
)

// Admin-editable settings keys.
const (
	SettingReferralEnabled      = "referral_enabled"
	SettingReferralSharePercent = "referral_share_percent"
)
