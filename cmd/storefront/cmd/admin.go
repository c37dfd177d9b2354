package cmd

import (
	"context"
	"fmt"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"

	"github.com/spf13/cobra"
)

var adminFlags struct {
	username string
	password string
	period   string
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Store administration",
	Long: `Store administration commands.

The admin API uses a cookie session, so every command signs in with
--username/--password first and signs out when it is done.`,
}

// 管理者としてログインしてからfnを実行する
func withAdmin(cmd *cobra.Command, fn func(ctx context.Context, rt *runtime) error) error {
	return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
		if _, err := rt.Client.Admin.Login(ctx, api.AdminCredentials{
			Username: adminFlags.username,
			Password: adminFlags.password,
		}); err != nil {
			return err
		}
		defer func() {
			_ = rt.Client.Admin.Logout(context.WithoutCancel(ctx))
		}()
		return fn(ctx, rt)
	})
}

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show store totals and recent orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(ctx context.Context, rt *runtime) error {
			d, err := rt.Client.Admin.Dashboard(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tw := newTable(out)
			fmt.Fprintf(tw, "Revenue\t%s\n", money(d.TotalRevenue))
			fmt.Fprintf(tw, "Orders\t%d\n", d.TotalOrders)
			fmt.Fprintf(tw, "Users\t%d\n", d.TotalUsers)
			fmt.Fprintf(tw, "Products\t%d\n", d.TotalProducts)
			tw.Flush()

			if len(d.RecentOrders) > 0 {
				fmt.Fprintln(out)
				printOrders(out, d.RecentOrders)
			}
			return nil
		})
	},
}

var adminInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show stock levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(ctx context.Context, rt *runtime) error {
			items, err := rt.Client.Admin.Inventory(ctx)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tSTOCK")
			for _, it := range items {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", it.ProductID, it.Name, it.Stock)
			}
			return tw.Flush()
		})
	},
}

var adminAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show revenue per day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(ctx context.Context, rt *runtime) error {
			a, err := rt.Client.Admin.Analytics(ctx, adminFlags.period)
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "DATE\tORDERS\tREVENUE")
			for _, p := range a.Points {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", p.Date, p.Orders, money(p.Revenue))
			}
			return tw.Flush()
		})
	},
}

func init() {
	pf := adminCmd.PersistentFlags()
	pf.StringVar(&adminFlags.username, "username", "", "admin username")
	pf.StringVar(&adminFlags.password, "password", "", "admin password")
	_ = adminCmd.MarkPersistentFlagRequired("username")
	_ = adminCmd.MarkPersistentFlagRequired("password")

	adminAnalyticsCmd.Flags().StringVar(&adminFlags.period, "period", api.DefaultAnalyticsPeriod, "period (e.g. 7d, 30d)")

	adminCmd.AddCommand(adminDashboardCmd, adminInventoryCmd, adminAnalyticsCmd)
	rootCmd.AddCommand(adminCmd)
}
