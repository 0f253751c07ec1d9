package cmd

import (
	"db-wipe/internal/wipe"

	"github.com/spf13/cobra"
)

var dropFlags wipeFlags

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop one or all tables",
	Long: `Drop one or all tables.

Given either the --table <table> or --all flag, drops the tables.

With --dry-run the statements are printed but not executed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWipe(cmd, wipe.Drop, &dropFlags)
	},
}

func init() {
	RootCmd.AddCommand(dropCmd)
	dropFlags.register(dropCmd)
}
