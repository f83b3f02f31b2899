package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchpad/config"
	"launchpad/internal/app"
	"launchpad/internal/logging"
	"launchpad/internal/router"
	"launchpad/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Server.Production(), cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("startup", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	if cfg.Reconciler.Enabled {
		reconciler, err := service.NewClaimReconciler(a.Referral, cfg.Reconciler, logger)
		if err != nil {
			logger.Fatal("reconciler", zap.Error(err))
		}
		if err := reconciler.Start(); err != nil {
			logger.Fatal("reconciler", zap.Error(err))
		}
		defer func() {
			if err := reconciler.Stop(); err != nil {
				logger.Warn("reconciler shutdown", zap.Error(err))
			}
		}()
	}

	limiters := router.NewLimiters()
	limiters.Global.StartSweeper(ctx, 5*time.Minute)
	limiters.Claims.StartSweeper(ctx, 5*time.Minute)

	engine := router.Setup(cfg, a.DB, a.Referral, limiters, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
