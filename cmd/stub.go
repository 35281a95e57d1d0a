/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/daffahilmyf/dictators-seed/internal/bootstrap"
	"github.com/daffahilmyf/dictators-seed/internal/config"
	"github.com/spf13/cobra"
)

var stubAddress string

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run an in-memory stand-in of the Dictators Club API",
	Long: `Serves the endpoints the seeder talks to (/api/dictators, /api/achievements,
/api/init/...) from process memory. Data is lost on exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
		if stubAddress != "" {
			cfg.Server.Address = stubAddress
		}
		if err := bootstrap.RunStub(ctx, cfg, cmd.OutOrStdout()); err != nil {
			fmt.Fprintln(os.Stderr, "server error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	stubCmd.Flags().StringVar(&stubAddress, "address", "", "listen address (overrides server.address)")
	rootCmd.AddCommand(stubCmd)
}
