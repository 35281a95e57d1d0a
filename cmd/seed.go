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
	"github.com/spf13/pflag"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the API with sample dictators and achievements",
	Long: `Exit status:
  0  seeded, or fallback finished with some failed records
  1  the API was not reachable (nothing was written) or setup failed
  2  --strict and at least one fallback record failed`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
		if err := applySeedFlags(cmd.Flags(), &cfg); err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
		code := runSeed(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		stop()
		os.Exit(code)
	},
}

func runSeed(ctx context.Context, cfg config.Config, out, errOut io.Writer) int {
	report, err := bootstrap.Seed(ctx, cfg, out)
	if err != nil {
		fmt.Fprintln(errOut, "seed error:", err)
	}
	return bootstrap.ExitCode(report, err, cfg.Seed.Strict)
}

// applySeedFlags overrides cfg with flags the user set explicitly.
func applySeedFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	if flags.Changed("base-url") {
		if cfg.API.BaseURL, err = flags.GetString("base-url"); err != nil {
			return err
		}
	}
	if flags.Changed("dataset") {
		if cfg.Seed.DatasetFile, err = flags.GetString("dataset"); err != nil {
			return err
		}
	}
	if flags.Changed("synthetic") {
		if cfg.Seed.SyntheticCount, err = flags.GetInt("synthetic"); err != nil {
			return err
		}
	}
	if flags.Changed("synthetic-seed") {
		if cfg.Seed.SyntheticSeed, err = flags.GetInt64("synthetic-seed"); err != nil {
			return err
		}
	}
	if flags.Changed("skip-bulk") {
		if cfg.Seed.SkipBulk, err = flags.GetBool("skip-bulk"); err != nil {
			return err
		}
	}
	if flags.Changed("strict") {
		if cfg.Seed.Strict, err = flags.GetBool("strict"); err != nil {
			return err
		}
	}
	if flags.Changed("skip-verify") {
		skip, err := flags.GetBool("skip-verify")
		if err != nil {
			return err
		}
		cfg.Verify.Enabled = !skip
	}
	return cfg.Validate()
}

func registerSeedFlags(flags *pflag.FlagSet) {
	flags.String("base-url", config.DefaultBaseURL, "API base url")
	flags.String("dataset", "", "dataset file (yaml/json/toml) to seed instead of the built-in sample")
	flags.Int("synthetic", 0, "number of generated dictators to add to the dataset")
	flags.Int64("synthetic-seed", 0, "random seed for generated dictators (0 = random)")
	flags.Bool("skip-bulk", false, "skip the bulk endpoint and create records one by one")
	flags.Bool("strict", false, "exit 2 when any record fails on the fallback path")
	flags.Bool("skip-verify", false, "skip read-back verification")
}

func init() {
	registerSeedFlags(seedCmd.Flags())
	rootCmd.AddCommand(seedCmd)
}
