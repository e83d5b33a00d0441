// Package cli implements the fitai command line client.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "fitai",
	Short:         "fitai logs meals and tracks daily nutrition goals",
	Long:          "fitai is a nutrition tracking client. It works against built-in demo data or a FitAI backend (USE_MOCK_DATA=false, BACKEND_URL).",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and session activity to stderr")
}
