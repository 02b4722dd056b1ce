package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tahfiz",
	Short: "Quran memorization progress and test scoring",
	Long:  "Tahfiz — deterministic scoring and progress-gap engine for Quran memorization programs.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(gapCmd)
	rootCmd.AddCommand(juzCmd)
	rootCmd.AddCommand(versionCmd)
}
