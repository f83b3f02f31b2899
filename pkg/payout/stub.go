package payout

import (
	"context"
	"crypto/sha512"
	"sync"

	"github.com/gagliardetto/solana-go"

	"launchpad/pkg/money"
)

// StubExecutor pretends to transfer and returns a deterministic signature
// derived from the claim ID. For development and tests only.
type StubExecutor struct {
	mu        sync.Mutex
	transfers map[string]string
	// FailWith, when set, makes every Transfer fail with this reason.
	FailWith string
}

func NewStubExecutor() *StubExecutor {
	return &StubExecutor{transfers: make(map[string]string)}
}

func (s *StubExecutor) Transfer(ctx context.Context, destination string, amount money.Lamports, claimID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &TransferError{ClaimID: claimID, Reason: "context done", Err: err}
	}
	if err := ValidateAddress(destination); err != nil {
		return "", &TransferError{ClaimID: claimID, Reason: "bad destination", Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != "" {
		return "", &TransferError{ClaimID: claimID, Reason: s.FailWith}
	}
	if sig, ok := s.transfers[claimID]; ok {
		return sig, nil
	}
	sig := solana.Signature(sha512.Sum512([]byte(claimID))).String()
	s.transfers[claimID] = sig
	return sig, nil
}

func (s *StubExecutor) TransferStatus(ctx context.Context, claimID string) (Status, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sig, ok := s.transfers[claimID]; ok {
		return StatusConfirmed, sig, nil
	}
	return StatusFailed, "", nil
}
