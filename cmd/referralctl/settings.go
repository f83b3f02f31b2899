package main

import (
	"fmt"

	"launchpad/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().Bool("enabled", true, "turn the referral program on or off")
	settingsSetCmd.Flags().Int("share-percent", 50, "referrer share of each fee, 0-100")
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or change runtime referral settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app.App, _ *zap.Logger) error {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"enabled":       a.Settings.Enabled(),
				"share_percent": a.Settings.SharePercent(),
			})
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings; only the flags given are written",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var enabled *bool
		var percent *int
		if cmd.Flags().Changed("enabled") {
			v, _ := cmd.Flags().GetBool("enabled")
			enabled = &v
		}
		if cmd.Flags().Changed("share-percent") {
			v, _ := cmd.Flags().GetInt("share-percent")
			percent = &v
		}
		if enabled == nil && percent == nil {
			return fmt.Errorf("nothing to update: pass --enabled or --share-percent")
		}
		return withApp(cmd.Context(), func(a *app.App, _ *zap.Logger) error {
			if err := a.Settings.Update(cmd.Context(), enabled, percent); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "enabled=%t share_percent=%d\n", a.Settings.Enabled(), a.Settings.SharePercent())
			return nil
		})
	},
}
