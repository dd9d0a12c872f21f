package main

import (
	"github.com/aretw0/testhooks/internal/cli"
	"github.com/spf13/cobra"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay <plan>",
	Short: "Replay a hook plan and print the callback trace",
	Long: `Registers every callback of a YAML or JSON plan, drives a full run over its cases
and prints each callback start and end in dispatch order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.ReplayOptions{PlanPath: args[0]}
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")
		opts.Metrics, _ = cmd.Flags().GetBool("metrics")
		opts.NoColor, _ = cmd.Flags().GetBool("no-color")
		opts.LogLevel, _ = cmd.Flags().GetString("log-level")
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			opts.LogLevel = "debug"
		}
		return cli.RunReplay(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolP("verbose", "v", false, "Print case progress lines")
	replayCmd.Flags().Bool("metrics", false, "Print the collected metrics after the trace")
	replayCmd.Flags().Bool("debug", false, "Enable debug logging (shorthand for --log-level=debug)")
	replayCmd.Flags().String("log-level", "", "Log level for stderr logs (debug, info, warn, error)")
}
