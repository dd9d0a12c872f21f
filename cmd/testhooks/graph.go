package main

import (
	"github.com/aretw0/testhooks/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <plan>",
	Short: "Export the plan as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph LR) linking cases to labels and labels to callbacks.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, _ := cmd.Flags().GetBool("overlay")
		return cli.RunGraph(cmd.OutOrStdout(), args[0], overlay)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("overlay", false, "Style callbacks that never fire during a replay")
}
