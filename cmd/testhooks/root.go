package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "testhooks",
	Short: "testhooks inspects label-driven test lifecycle callbacks",
	Long: `testhooks replays hook plans through the lifecycle dispatcher so you can see
which setup and teardown callbacks fire for each test case, and in which order.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}
