// Package payout moves claimed referral earnings to a user's wallet.
package payout

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"launchpad/pkg/money"
)

// Status is the settled state of a transfer as seen by the executor.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
	StatusUnknown   Status = "unknown"
)

// Executor performs the transfer. claimID doubles as the idempotency key: a
// retry with the same claimID must never pay twice.
type Executor interface {
	Transfer(ctx context.Context, destination string, amount money.Lamports, claimID string) (string, error)
}

// StatusChecker is implemented by executors that can report on an earlier
// transfer. It is used when Transfer returned without a definite outcome.
type StatusChecker interface {
	TransferStatus(ctx context.Context, claimID string) (Status, string, error)
}

// TransferError is returned by executors when a transfer did not happen.
type TransferError struct {
	ClaimID string
	Reason  string
	Err     error
}

func (e *TransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transfer %s: %s: %v", e.ClaimID, e.Reason, e.Err)
	}
	return fmt.Sprintf("transfer %s: %s", e.ClaimID, e.Reason)
}

func (e *TransferError) Unwrap() error { return e.Err }

var (
	ErrInvalidDestination = errors.New("invalid destination address")
	// ErrOutcomeUnknown marks transfer failures after which the vault may
	// or may not have paid.
	ErrOutcomeUnknown = errors.New("transfer outcome unknown")
)

// ValidateAddress checks that addr is a base58 Solana public key.
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDestination)
	}
	if _, err := solana.PublicKeyFromBase58(addr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}
	return nil
}
