/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bifrost",
	Short: "Bifrost - Compact frame codec for byte streams",
	Long: `Bifrost packs payloads into self-delimiting, CRC-checked frames and
recovers them from continuous, possibly corrupted byte streams.

The CLI builds frame streams, scans captured streams, generates test
fixtures, and serves the frame inspector REST API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
