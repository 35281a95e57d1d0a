/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/daffahilmyf/dictators-seed/internal/bootstrap"
	"github.com/daffahilmyf/dictators-seed/internal/config"
	"github.com/spf13/cobra"
)

var verifyDictatorID int64

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Read back the public endpoints without writing anything",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("dictator-id") {
			cfg.Verify.DictatorID = verifyDictatorID
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
		code := runVerify(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		stop()
		os.Exit(code)
	},
}

func runVerify(ctx context.Context, cfg config.Config, out, errOut io.Writer) int {
	if _, err := bootstrap.Verify(ctx, cfg, out); err != nil {
		fmt.Fprintln(errOut, "verify error:", err)
		return bootstrap.ExitUnreachable
	}
	return bootstrap.ExitOK
}

func init() {
	verifyCmd.Flags().Int64Var(&verifyDictatorID, "dictator-id", 1, "dictator id to fetch")
	rootCmd.AddCommand(verifyCmd)
}
