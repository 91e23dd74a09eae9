// Package cmd contains the ledger client commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var nodeURL string

func init() {
	rootCmd.PersistentFlags().StringVarP(&nodeURL, "url", "u", "http://localhost:5000", "Url of the node.")
}

var rootCmd = &cobra.Command{
	Use:          "ledger",
	Short:        "Client for a proof of work ledger node",
	SilenceUsage: true,
}

// Execute runs the command named on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
