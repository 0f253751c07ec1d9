package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"db-wipe/internal/errs"
	"db-wipe/internal/report"
	"db-wipe/pkg/logger"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	dsn     string
	driver  string
	verbose bool

	Log     *logger.Logger
	Printer *report.Printer
)

var RootCmd = &cobra.Command{
	Use:   "db-wipe",
	Short: "Truncate or drop database tables",
	Long: `
     _ _                   _            
  __| | |__    __      __ (_)_ __   ___ 
 / _' | '_ \___\ \ /\ / / | | '_ \ / _ \
| (_| | |_) |___\ V  V /  | | |_) |  __/
 \__,_|_.__/     \_/\_/   |_| .__/ \___|
                            |_|         
DB WIPE - reset development databases without hand-written SQL
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		Log = logger.NewLogger(viper.GetBool("log.verbose"))
		Printer = report.New(cmd.OutOrStdout(), !color.NoColor)
		if used := viper.ConfigFileUsed(); used != "" {
			Log.WithField("file", used).Debug("Using config file")
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on any returned error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		report.New(os.Stderr, !color.NoColor).Fatal(errorText(err))
		stop()
		os.Exit(1)
	}
}

// errorText drops the kind prefix for usage errors, which read as plain sentences.
func errorText(err error) string {
	if errs.IsInvalidArguments(err) {
		return errs.Message(err)
	}
	return err.Error()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-wipe.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
	RootCmd.PersistentFlags().StringVar(&driver, "driver", "", "database driver: mysql, postgres, pgx, sqlserver, mssql, oracle (default: detected from DSN)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	bindFlags()
}

// bindFlags wires flags and defaults into viper (Flag > Env > Config > Default).
func bindFlags() {
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("log.verbose", RootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("database.connect_timeout", 10*time.Second)
}

// initConfig reads in config file, .env and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-wipe")
		viper.SetConfigType("yaml")
	}

	// A missing .env is fine; variables already set in the environment win.
	_ = godotenv.Load()

	viper.SetEnvPrefix("DB_WIPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "failed to read config %s: %v\n", cfgFile, err)
	}
}
