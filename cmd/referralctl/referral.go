package main

import (
	"fmt"

	"launchpad/internal/app"
	"launchpad/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(accrueCmd)

	accrueCmd.Flags().Float64P("amount", "a", 0, "referrer share in SOL")
	accrueCmd.Flags().StringP("source", "s", "", "user whose operation paid the fee")
	accrueCmd.Flags().StringP("operation", "o", "", "operation type (token_launch, swap, boost, vote)")
	_ = accrueCmd.MarkFlagRequired("amount")
	_ = accrueCmd.MarkFlagRequired("source")
	_ = accrueCmd.MarkFlagRequired("operation")
}

var statsCmd = &cobra.Command{
	Use:   "stats USER_ID",
	Short: "Show a user's referral dashboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App, _ *zap.Logger) error {
			stats, err := a.Referral.GetStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		})
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply USER_ID CODE",
	Short: "Bind a user to the owner of a referral code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App, _ *zap.Logger) error {
			if err := a.Referral.ApplyReferralCode(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now referred by code %s\n", args[0], args[1])
			return nil
		})
	},
}

var accrueCmd = &cobra.Command{
	Use:   "accrue REFERRER_ID",
	Short: "Credit referral earnings by hand",
	Long: `Credit a referrer with a share of a fee, as the fee pipeline would.
Use it to replay accruals the pipeline failed to deliver.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccrue,
}

func runAccrue(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetFloat64("amount")
	source, _ := cmd.Flags().GetString("source")
	operation, _ := cmd.Flags().GetString("operation")

	amount, err := service.ParseAmount(raw)
	if err != nil {
		return err
	}
	return withApp(cmd.Context(), func(a *app.App, _ *zap.Logger) error {
		entry, err := a.Referral.AddReferralEarnings(cmd.Context(), args[0], amount, source, operation)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "credited %s SOL to %s (fee %s SOL)\n",
			entry.ReferrerShare.Display(), entry.ReferrerID, entry.FeeAmount.Display())
		return nil
	})
}
