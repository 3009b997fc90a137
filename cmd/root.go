package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorel",
	Short: "gorel automates version bumps, release tags, and release history",
	Long:  "gorel bumps the version recorded in a project's metadata files, commits the change, and creates a matching annotated tag",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gorel: run 'gorel --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
