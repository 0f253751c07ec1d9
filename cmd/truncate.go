package cmd

import (
	"db-wipe/internal/wipe"

	"github.com/spf13/cobra"
)

var truncateFlags wipeFlags

var truncateCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Truncate data from one or all tables",
	Long: `Truncate data from one or all tables.

Given either the --table <table> or --all flag, empties the tables while
keeping their structure. The migration status table and any table listed
under truncate.exclude are never truncated.

With --dry-run the statements are printed but not executed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWipe(cmd, wipe.Truncate, &truncateFlags)
	},
}

func init() {
	RootCmd.AddCommand(truncateCmd)
	truncateFlags.register(truncateCmd)
}
