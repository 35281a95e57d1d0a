/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dictators-seed",
	Short: "Seed and verify the Dictators Club API with sample data",
	Long: `dictators-seed pushes the sample dictators and their achievements to a
running Dictators Club API, then reads the public endpoints back.

The server-side bulk endpoint is tried first; when it fails every record is
created individually.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}
