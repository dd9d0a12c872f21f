package main

import (
	"github.com/aretw0/testhooks/internal/cli"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <plan>",
	Short: "Describe what a hook plan does, case by case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		return cli.RunExplain(cmd.OutOrStdout(), args[0], raw)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
}
