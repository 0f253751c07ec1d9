package cmd

import (
	"db-wipe/internal/errs"
	"db-wipe/internal/schema"
	"db-wipe/internal/wipe"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// wipeFlags are the flags shared by truncate and drop.
type wipeFlags struct {
	table    string
	all      bool
	dryRun   bool
	progress bool
}

func (f *wipeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.table, "table", "t", "", "name of the single table to process")
	cmd.Flags().BoolVar(&f.all, "all", false, "process every table of the schema")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the statements without executing them")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "show a progress bar while executing")
}

func (f *wipeFlags) selector() schema.Selector {
	return schema.Selector{Table: f.table, All: f.all}
}

// runWipe hands the selection to the wipe command. The connection is only
// opened once the selection has been validated and the tables are listed.
func runWipe(cmd *cobra.Command, mode wipe.Mode, f *wipeFlags) error {
	config, d, err := resolve()
	if err != nil {
		return err
	}
	conn := &lazyConn{config: config, dialect: d}
	defer conn.Close()

	var (
		progress *uiprogress.Progress
		bar      *uiprogress.Bar
	)
	opts := []wipe.Option{
		wipe.WithLogger(Log),
		wipe.WithPlanned(func(plan wipe.Plan) {
			if !f.progress || f.dryRun {
				return
			}
			progress = uiprogress.New()
			bar = progress.AddBar(len(plan)).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return mode.String() + ": "
			})
			progress.Start()
			Printer.SetOutput(progress.Bypass())
		}),
		wipe.WithProgress(func() {
			if bar != nil {
				bar.Incr()
			}
		}),
	}
	if mode == wipe.Truncate {
		opts = append(opts, wipe.WithExclude(viper.GetStringSlice("truncate.exclude")...))
	}
	w := wipe.New(conn, d, Printer, opts...)

	run := w.Truncate
	if mode == wipe.Drop {
		run = w.Drop
	}
	results, err := run(cmd.Context(), f.selector(), f.dryRun)
	if progress != nil {
		progress.Stop()
		Printer.SetOutput(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}

	if f.dryRun {
		Log.WithField("statements", len(results)).Info("Dry run finished, nothing executed")
		return nil
	}
	executed, failed := wipe.Summary(results)
	entry := Log.WithField("executed", executed).WithField("failed", failed)
	if failed > 0 {
		entry.Warn("Finished with failed statements")
	} else {
		entry.Info("Finished")
	}
	for _, r := range results {
		if errs.IsPermissionDenied(r.Err) {
			Log.WithField("statement", r.Statement).Warn("Refused for lack of privileges, check the grants of the configured user")
		}
	}
	return nil
}
