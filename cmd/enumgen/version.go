package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablor21/enumgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the enumgen version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "enumgen", enumgen.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
