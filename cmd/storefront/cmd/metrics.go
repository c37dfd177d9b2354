package cmd

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/metrics"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Restore the local state and print the collected metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			if printMetrics {
				return nil
			}
			return metrics.Write(cmd.OutOrStdout(), rt.Registry)
		})
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
