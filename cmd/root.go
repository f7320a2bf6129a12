package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "emitter",
	Short: "A Move package publishing workload generator",
	Long: "emitter builds signed Diem transactions that publish, use and " +
		"republish Move packages from a set of premade accounts",
}

func Execute() error {
	return rootCmd.Execute()
}
