package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			orders, err := rt.Orders.LoadOrders(ctx)
			if err != nil {
				return err
			}
			printOrders(cmd.OutOrStdout(), orders)
			return nil
		})
	},
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel a pending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			o, err := rt.Orders.Cancel(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is %s\n", o.OrderNumber, o.Status)
			return nil
		})
	},
}

func init() {
	ordersCmd.AddCommand(ordersCancelCmd)
	rootCmd.AddCommand(ordersCmd)
}
