package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "togglbill",
	Short: "togglbill – billing reports from Toggl time entries",
	Long: `togglbill fetches a client's complete time-entry history from the
Toggl detailed-report API and turns it into a billing report: worked minutes
per day, billable minutes under the rounding policy, and the amount owed.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(clientsCmd)
}
