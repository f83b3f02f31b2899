package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a referral failure. Handlers map kinds to status codes.
type ErrorKind string

const (
	KindSystemDisabled         ErrorKind = "system_disabled"
	KindInvalidUser            ErrorKind = "invalid_user"
	KindInvalidCode            ErrorKind = "invalid_code"
	KindSelfReferral           ErrorKind = "self_referral"
	KindAlreadyReferred        ErrorKind = "already_referred"
	KindInvalidAmount          ErrorKind = "invalid_amount"
	KindReferrerNotFound       ErrorKind = "referrer_not_found"
	KindInvalidDestination     ErrorKind = "invalid_destination"
	KindClaimInProgress        ErrorKind = "claim_in_progress"
	KindClaimNotFound          ErrorKind = "claim_not_found"
	KindBelowMinimum           ErrorKind = "below_minimum"
	KindCooldownActive         ErrorKind = "cooldown_active"
	KindConcurrentModification ErrorKind = "concurrent_modification"
	KindTransferFailed         ErrorKind = "transfer_failed"
	KindCodeExhaustion         ErrorKind = "code_exhaustion"
	KindStoreUnavailable       ErrorKind = "store_unavailable"
)

// ReferralError is an expected business failure with a message fit for the
// end user. Compare with errors.Is against the Err* values below.
type ReferralError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ReferralError) Error() string { return e.Message }

func (e *ReferralError) Unwrap() error { return e.Err }

// Is matches any ReferralError of the same kind.
func (e *ReferralError) Is(target error) bool {
	t, ok := target.(*ReferralError)
	return ok && t.Kind == e.Kind
}

var (
	ErrSystemDisabled         = &ReferralError{Kind: KindSystemDisabled, Message: "referral system is disabled"}
	ErrInvalidUser            = &ReferralError{Kind: KindInvalidUser, Message: "user id is required"}
	ErrInvalidCode            = &ReferralError{Kind: KindInvalidCode, Message: "invalid referral code"}
	ErrSelfReferral           = &ReferralError{Kind: KindSelfReferral, Message: "you cannot use your own referral code"}
	ErrAlreadyReferred        = &ReferralError{Kind: KindAlreadyReferred, Message: "a referral code has already been applied to this account"}
	ErrInvalidAmount          = &ReferralError{Kind: KindInvalidAmount, Message: "invalid earnings amount"}
	ErrReferrerNotFound       = &ReferralError{Kind: KindReferrerNotFound, Message: "referrer not found"}
	ErrInvalidDestination     = &ReferralError{Kind: KindInvalidDestination, Message: "invalid destination address"}
	ErrClaimInProgress        = &ReferralError{Kind: KindClaimInProgress, Message: "a claim is already in progress, please wait"}
	ErrClaimNotFound          = &ReferralError{Kind: KindClaimNotFound, Message: "claim not found"}
	ErrBelowMinimum           = &ReferralError{Kind: KindBelowMinimum, Message: "pending earnings below minimum claim amount"}
	ErrCooldownActive         = &ReferralError{Kind: KindCooldownActive, Message: "claim cooldown active"}
	ErrConcurrentModification = &ReferralError{Kind: KindConcurrentModification, Message: "earnings changed during claim, please retry"}
	ErrTransferFailed         = &ReferralError{Kind: KindTransferFailed, Message: "transfer failed"}
	ErrCodeExhaustion         = &ReferralError{Kind: KindCodeExhaustion, Message: "could not generate a unique referral code"}
	ErrStoreUnavailable       = &ReferralError{Kind: KindStoreUnavailable, Message: "referral store unavailable"}
)

func newError(kind ErrorKind, err error, format string, args ...any) *ReferralError {
	return &ReferralError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func storeError(op string, err error) *ReferralError {
	return &ReferralError{Kind: KindStoreUnavailable, Message: ErrStoreUnavailable.Message, Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf returns the kind of a ReferralError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var re *ReferralError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}
