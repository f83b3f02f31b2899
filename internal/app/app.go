// Package app wires the referral engine from configuration. It is shared by
// the HTTP server and the operator CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"launchpad/config"
	"launchpad/internal/database"
	"launchpad/internal/metrics"
	"launchpad/internal/repository"
	"launchpad/internal/service"
	"launchpad/pkg/payout"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	DB       *gorm.DB
	Referral *service.ReferralService
	Settings *service.ReferralSettings
	Payout   service.PayoutExecutor
}

// New opens the database, migrates it, seeds and loads the runtime settings
// and builds the referral service.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return Build(ctx, cfg, db, logger)
}

// Build wires the service over an already migrated database.
func Build(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*App, error) {
	settingRepo := repository.NewSettingRepository(db)
	referralRepo := repository.NewReferralRepository(db)

	settings := service.NewReferralSettings(cfg.Referral, settingRepo, logger)
	if err := settingRepo.SeedDefaults(ctx, settings.Defaults()); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	if err := settings.Load(ctx); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	exec, err := NewExecutor(cfg.Payout, logger)
	if err != nil {
		return nil, err
	}

	svc := service.NewReferralService(cfg.Referral, referralRepo, settings, exec, metrics.NewReferral(), logger)
	return &App{DB: db, Referral: svc, Settings: settings, Payout: exec}, nil
}

func NewExecutor(cfg config.PayoutConfig, logger *zap.Logger) (service.PayoutExecutor, error) {
	switch cfg.Mode {
	case "stub":
		logger.Warn("using stub payout executor, claims will not move funds")
		return payout.NewStubExecutor(), nil
	case "http":
		return payout.NewHTTPExecutor(cfg.BaseURL, cfg.APIKey, cfg.Timeout, cfg.RatePerSecond, logger), nil
	default:
		return nil, fmt.Errorf("unknown payout mode %q", cfg.Mode)
	}
}

// Close releases the database pool.
func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ShutdownTimeout bounds graceful shutdown of the server.
const ShutdownTimeout = 10 * time.Second
