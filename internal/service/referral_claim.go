package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"launchpad/config"
	"launchpad/internal/domain"
	"launchpad/internal/models"
	"launchpad/internal/repository"
	"launchpad/pkg/money"
	"launchpad/pkg/payout"

	"go.uber.org/zap"
)

// Claim outcomes reported to metrics.
const (
	ClaimOutcomeSuccess  = "success"
	ClaimOutcomeFailed   = "failed"
	ClaimOutcomeUnknown  = "unknown"
	ClaimOutcomeRejected = "rejected"
)

var errOutcomeUnknown = errors.New("transfer outcome unknown")

// ClaimResult describes a claim that reached the payout stage.
type ClaimResult struct {
	ClaimID     string         `json:"claim_id"`
	Amount      money.Lamports `json:"amount"`
	Destination string         `json:"destination"`
	TxSignature string         `json:"tx_signature"`
	ClaimedAt   time.Time      `json:"claimed_at"`
}

// ProcessClaim pays out userID's whole pending balance to destination.
//
// Only one claim per user runs at a time, across processes. The pending
// balance is zeroed with a compare-and-swap before the transfer and added
// back if the transfer fails, so accruals that land meanwhile survive.
func (s *ReferralService) ProcessClaim(ctx context.Context, userID, destination string) (*ClaimResult, error) {
	started := time.Now()
	res, err := s.processClaim(ctx, userID, destination)
	switch {
	case err == nil:
		s.metrics.ClaimFinished(ClaimOutcomeSuccess, res.Amount, started)
	case errors.Is(err, errOutcomeUnknown):
		s.metrics.ClaimFinished(ClaimOutcomeUnknown, 0, started)
	case errors.Is(err, ErrTransferFailed):
		s.metrics.ClaimFinished(ClaimOutcomeFailed, 0, started)
	default:
		s.metrics.ClaimFinished(ClaimOutcomeRejected, 0, started)
	}
	return res, err
}

func (s *ReferralService) processClaim(ctx context.Context, userID, destination string) (*ClaimResult, error) {
	if !s.settings.Enabled() {
		return nil, ErrSystemDisabled
	}
	if userID == "" {
		return nil, ErrInvalidUser
	}
	if err := payout.ValidateAddress(destination); err != nil {
		return nil, newError(KindInvalidDestination, err, "invalid destination address %q", destination)
	}

	release, ok := s.guard.acquire(userID)
	if !ok {
		return nil, ErrClaimInProgress
	}
	defer release()

	if _, _, err := s.getOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	owner := s.lockOwner()
	locked, err := s.store.AcquireClaimLock(ctx, userID, owner, s.now(), s.lockTTL)
	if err != nil {
		return nil, storeError("acquire claim lock", err)
	}
	if !locked {
		return nil, ErrClaimInProgress
	}
	defer func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.SettleTimeout)
		defer cancel()
		if err := s.store.ReleaseClaimLock(rctx, userID, owner); err != nil {
			s.logger.Error("release claim lock", zap.String("user_id", userID), zap.Error(err))
		}
	}()

	a, err := s.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, storeError("get account", err)
	}
	pending := a.PendingEarnings
	if pending < s.minClaim {
		return nil, newError(KindBelowMinimum, nil, "minimum claim is %s SOL, pending earnings are %s SOL",
			s.minClaim.Display(), pending.Display())
	}
	if _, remaining := s.cooldownWindow(a, s.now()); remaining > 0 {
		return nil, newError(KindCooldownActive, nil, "claim cooldown active, try again in %s",
			remaining.Round(time.Second))
	}

	claimID := s.newID()
	log := s.logger.With(zap.String("user_id", userID), zap.String("claim_id", claimID), zap.Stringer("amount", pending))

	reserved, err := s.store.ReservePending(ctx, userID, pending)
	if err != nil {
		return nil, storeError("reserve pending earnings", err)
	}
	if !reserved {
		log.Warn("pending earnings changed during claim")
		return nil, ErrConcurrentModification
	}

	// Past this point money is reserved; use a context the caller cannot cancel.
	dctx := context.WithoutCancel(ctx)

	claim := &models.ReferralClaim{
		ClaimID:            claimID,
		UserID:             userID,
		Amount:             pending,
		DestinationAddress: destination,
		Status:             domain.ClaimStatusPendingTransfer,
		CreatedAt:          s.now(),
	}
	if err := s.store.CreateClaim(dctx, claim); err != nil {
		if rerr := s.store.RestorePending(dctx, userID, pending); rerr != nil {
			log.Error("restore pending after failed claim insert", zap.Error(rerr))
		}
		return nil, storeError("create claim", err)
	}
	log.Info("claim reserved, starting transfer", zap.String("destination", destination))

	tctx, cancel := context.WithTimeout(dctx, s.transferTimeout)
	signature, terr := s.payout.Transfer(tctx, destination, pending, claimID)
	cancel()

	if terr != nil && payout.Uncertain(terr) {
		log.Warn("transfer outcome uncertain, checking with executor", zap.Error(terr))
		status, sig := s.lookupTransfer(dctx, claimID)
		switch status {
		case payout.StatusConfirmed:
			signature, terr = sig, nil
		case payout.StatusUnknown:
			log.Error("transfer outcome unknown, leaving claim for reconciliation")
			return nil, newError(KindTransferFailed, fmt.Errorf("%w: %w", errOutcomeUnknown, terr),
				"transfer outcome unknown for claim %s; it will be settled automatically", claimID)
		}
	}

	sctx, cancel := context.WithTimeout(dctx, config.SettleTimeout)
	defer cancel()

	if terr != nil {
		reason := transferReason(terr)
		if err := s.settle(sctx, claim, payout.StatusFailed, "", reason); err != nil {
			log.Error("roll back failed claim", zap.Error(err))
		} else {
			log.Warn("transfer failed, pending earnings restored", zap.String("reason", reason))
		}
		return nil, newError(KindTransferFailed, terr, "transfer failed: %s", reason)
	}

	claimedAt := s.now()
	if err := s.store.FinalizeClaim(sctx, userID, claimID, pending, signature, claimedAt); err != nil {
		log.Error("finalize claim after successful transfer", zap.String("signature", signature), zap.Error(err))
	} else {
		log.Info("claim paid", zap.String("signature", signature))
	}
	return &ClaimResult{
		ClaimID:     claimID,
		Amount:      pending,
		Destination: destination,
		TxSignature: signature,
		ClaimedAt:   claimedAt,
	}, nil
}

// lockOwner names one claim attempt in the store lease: the instance ID, cut
// to fit the column, then a fresh UUID.
func (s *ReferralService) lockOwner() string {
	id := s.newID()
	instance := s.instanceID
	if room := models.ClaimLockOwnerSize - len(id) - 1; len(instance) > room {
		instance = instance[:max(room, 0)]
	}
	return instance + "/" + id
}

// lookupTransfer asks the executor what happened to claimID. Executors
// without status support report failed, matching a plain transfer error.
func (s *ReferralService) lookupTransfer(ctx context.Context, claimID string) (payout.Status, string) {
	checker, ok := s.payout.(payout.StatusChecker)
	if !ok {
		return payout.StatusFailed, ""
	}
	ctx, cancel := context.WithTimeout(ctx, s.transferTimeout)
	defer cancel()
	status, sig, err := checker.TransferStatus(ctx, claimID)
	if err != nil {
		s.logger.Warn("transfer status lookup", zap.String("claim_id", claimID), zap.Error(err))
		return payout.StatusUnknown, ""
	}
	return status, sig
}

// settle moves a pending claim to its final state. Failed claims get their
// amount added back to pending in the same transaction.
func (s *ReferralService) settle(ctx context.Context, c *models.ReferralClaim, status payout.Status, signature, reason string) error {
	switch status {
	case payout.StatusConfirmed:
		return s.store.FinalizeClaim(ctx, c.UserID, c.ClaimID, c.Amount, signature, s.now())
	case payout.StatusFailed:
		return s.store.FailClaim(ctx, c.UserID, c.ClaimID, c.Amount, reason)
	default:
		return nil
	}
}

// ApplyPayoutOutcome settles a pending claim from an asynchronous payout
// report. Reports for settled claims are ignored.
func (s *ReferralService) ApplyPayoutOutcome(ctx context.Context, claimID string, status payout.Status, signature, reason string) error {
	c, err := s.store.GetClaim(ctx, claimID)
	if errors.Is(err, repository.ErrNotFound) {
		return newError(KindClaimNotFound, err, "claim %s not found", claimID)
	}
	if err != nil {
		return storeError("get claim", err)
	}
	if c.Status != domain.ClaimStatusPendingTransfer {
		return nil
	}
	if status == payout.StatusFailed && reason == "" {
		reason = "reported failed by payout provider"
	}
	err = s.settle(ctx, c, status, signature, reason)
	if errors.Is(err, repository.ErrClaimSettled) {
		return nil
	}
	if err != nil {
		return storeError("settle claim", err)
	}
	s.logger.Info("claim settled from payout report",
		zap.String("claim_id", claimID), zap.String("user_id", c.UserID), zap.String("status", string(status)))
	return nil
}

// ReconcileStale resolves claims stuck in pending_transfer for longer than
// olderThan and returns how many were settled.
func (s *ReferralService) ReconcileStale(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	if _, ok := s.payout.(payout.StatusChecker); !ok {
		return 0, nil
	}
	claims, err := s.store.StaleClaims(ctx, s.now().Add(-olderThan), limit)
	if err != nil {
		return 0, storeError("list stale claims", err)
	}
	settled := 0
	for i := range claims {
		c := &claims[i]
		status, sig := s.lookupTransfer(ctx, c.ClaimID)
		if status == payout.StatusUnknown {
			continue
		}
		err := s.settle(ctx, c, status, sig, "transfer not found by payout provider")
		if errors.Is(err, repository.ErrClaimSettled) {
			continue
		}
		if err != nil {
			s.logger.Error("reconcile claim", zap.String("claim_id", c.ClaimID), zap.Error(err))
			continue
		}
		settled++
		s.logger.Info("claim reconciled", zap.String("claim_id", c.ClaimID), zap.String("user_id", c.UserID), zap.String("status", string(status)))
	}
	return settled, nil
}

func transferReason(err error) string {
	var te *payout.TransferError
	if errors.As(err, &te) && te.Reason != "" {
		return te.Reason
	}
	return fmt.Sprint(err)
}
