package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dmart",
	Short: "Local CSV data mart builder",
	Long: asciiLogo + `

dmart builds a reproducible local data mart from flat CSV files and snapshots
report results. The load command ingests entity CSVs into a single SQLite
store file in foreign-key dependency order, skipping rows whose id already
exists; the report command replaces the report_output table with the fresh
result of an analyst-supplied SELECT statement.

Both commands are synchronous single-writer batch programs sharing nothing
but the store file. Running them concurrently against the same store is
unsupported.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Failed to open the store
  12 - Non-numeric value in a numeric CSV field
  13 - Foreign-key or uniqueness violation
  14 - Report query execution failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for dmart")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// projectPathFromArgs returns the optional project directory argument,
// defaulting to the current directory.
func projectPathFromArgs(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
