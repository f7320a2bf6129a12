package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"move-emitter/workloads"
)

// workloadsCmd lists the registered workloads
var workloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "Lists the available workloads",
	Args:  cobra.NoArgs,
	Run: func(command *cobra.Command, args []string) {
		for _, name := range workloads.Names() {
			fmt.Fprintln(command.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(workloadsCmd)
}
