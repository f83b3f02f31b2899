package main

import (
	"fmt"

	"launchpad/config"
	"launchpad/internal/app"
	"launchpad/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().Duration("stale-after", 0, "override RECONCILER_STALE_AFTER")
	reconcileCmd.Flags().Int("batch", 0, "override RECONCILER_BATCH_SIZE")
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Settle claims stuck in pending_transfer once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		rc := cfg.Reconciler
		if d, _ := cmd.Flags().GetDuration("stale-after"); d > 0 {
			rc.StaleAfter = d
		}
		if n, _ := cmd.Flags().GetInt("batch"); n > 0 {
			rc.BatchSize = n
		}
		return withApp(cmd.Context(), func(a *app.App, logger *zap.Logger) error {
			r, err := service.NewClaimReconciler(a.Referral, rc, logger)
			if err != nil {
				return err
			}
			n, err := r.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "settled %d claims\n", n)
			return nil
		})
	},
}
