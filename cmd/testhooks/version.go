package main

import (
	"fmt"

	"github.com/aretw0/testhooks"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of testhooks",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "testhooks version %s\n", testhooks.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
