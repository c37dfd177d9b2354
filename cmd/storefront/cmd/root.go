// Package cmd はstorefront CLIのコマンド群。
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	printMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "ShopHub storefront client",
	Long: `storefront is a command line client for the ShopHub REST API.

The cart and the signed-in user are kept locally between runs
(see storage.driver) and synced with the API where it supports it.

Configuration:
  Config is loaded from ./storefront.yaml (or --config) and a .env file.
  Environment variables override config values with the SHOPHUB_ prefix.
  Example: SHOPHUB_API_BASEURL=http://localhost:5000/api`,
	SilenceUsage: true,
}

// Executeはルートコマンドを実行する
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./storefront.yaml)")
	rootCmd.PersistentFlags().BoolVar(&printMetrics, "print-metrics", false, "print collected metrics after the command")
}
