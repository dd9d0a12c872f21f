package main

import (
	"github.com/aretw0/testhooks/internal/cli"
	"github.com/spf13/cobra"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Normalize label expressions",
	Long:  `Shows how label expressions such as "[tag1], [ tag2 ]" are split into canonical labels.`,
}

var labelsSplitCmd = &cobra.Command{
	Use:   "split <expr>...",
	Short: "Print every canonical label of each expression",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.PrintSplit(cmd.OutOrStdout(), args)
	},
}

var labelsFirstCmd = &cobra.Command{
	Use:   "first <expr>...",
	Short: "Print the first canonical label of each expression",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.PrintFirst(cmd.OutOrStdout(), args)
	},
}

var labelsEqualCmd = &cobra.Command{
	Use:   "equal <a> <b>",
	Short: "Report whether two expressions name the same label",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cli.CompareLabels(cmd.OutOrStdout(), args[0], args[1])
	},
}

func init() {
	labelsCmd.AddCommand(labelsSplitCmd, labelsFirstCmd, labelsEqualCmd)
	rootCmd.AddCommand(labelsCmd)
}
