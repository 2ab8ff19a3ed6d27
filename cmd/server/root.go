package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const appName = "practice-partner"

// Actual version can be specified in build command.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:          appName,
	Short:        "Mock interview server: role-specific questions, graded answers, a closing summary",
	SilenceUsage: true,
	// With no subcommand the server starts.
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", appName, version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, rolesCmd, banksCmd, simulateCmd, versionCmd)
}
