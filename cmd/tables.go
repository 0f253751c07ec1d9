package cmd

import (
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables truncate and drop would see",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, _, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		tables, err := conn.ListTables(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range tables {
			Printer.Line(t.Name)
		}
		Log.WithField("count", len(tables)).Debug("Listed tables")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)
}
