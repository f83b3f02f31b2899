package service

import (
	"context"
	"fmt"
	"time"

	"launchpad/config"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// ClaimReconciler periodically settles claims left in pending_transfer and
// refreshes the cached referral settings.
type ClaimReconciler struct {
	svc    *ReferralService
	cfg    config.ReconcilerConfig
	sched  gocron.Scheduler
	logger *zap.Logger
}

func NewClaimReconciler(svc *ReferralService, cfg config.ReconcilerConfig, logger *zap.Logger) (*ClaimReconciler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &ClaimReconciler{svc: svc, cfg: cfg, sched: sched, logger: logger}, nil
}

// Start registers the jobs and starts the scheduler.
func (r *ClaimReconciler) Start() error {
	_, err := r.sched.NewJob(
		gocron.DurationJob(r.cfg.Interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Interval)
			defer cancel()
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("claim reconciliation", zap.Error(err))
			}
		}),
		gocron.WithName("reconcile-claims"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule claim reconciliation: %w", err)
	}

	_, err = r.sched.NewJob(
		gocron.DurationJob(r.cfg.Interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := r.svc.Settings().Load(ctx); err != nil {
				r.logger.Warn("refresh referral settings", zap.Error(err))
			}
		}),
		gocron.WithName("refresh-settings"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule settings refresh: %w", err)
	}

	r.sched.Start()
	r.logger.Info("claim reconciler started", zap.Duration("interval", r.cfg.Interval), zap.Duration("stale_after", r.cfg.StaleAfter))
	return nil
}

// RunOnce reconciles one batch of stale claims.
func (r *ClaimReconciler) RunOnce(ctx context.Context) (int, error) {
	n, err := r.svc.ReconcileStale(ctx, r.cfg.StaleAfter, r.cfg.BatchSize)
	if n > 0 {
		r.logger.Info("stale claims reconciled", zap.Int("settled", n))
	}
	return n, err
}

func (r *ClaimReconciler) Stop() error {
	return r.sched.Shutdown()
}
