package cmd

import (
	"fmt"

	"db-wipe/internal/database"
	"db-wipe/internal/dialect"
	"db-wipe/internal/errs"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active entry of the databases list.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, errs.New(errs.ErrKindInvalidArguments, "no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, errs.New(errs.ErrKindInvalidArguments, "multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// ResolveDBConfig picks the connection settings: an explicit --dsn flag
// wins, then the active entry of databases, then database.* (env/config).
func ResolveDBConfig() (*DBConfig, error) {
	flagged := RootCmd.PersistentFlags().Changed("dsn")

	var cfg *DBConfig
	if !flagged && viper.IsSet("databases") {
		active, err := GetActiveDBConfig()
		if err != nil {
			return nil, err
		}
		cfg = active
	} else {
		cfg = &DBConfig{
			Name:   "default",
			Driver: viper.GetString("database.driver"),
			DSN:    viper.GetString("database.dsn"),
		}
	}

	if cfg.DSN == "" {
		return nil, errs.New(errs.ErrKindInvalidArguments, "database.dsn is required (via --dsn, DB_WIPE_DATABASE_DSN or config)")
	}
	if cfg.Driver == "" {
		cfg.Driver = dialect.DetectDriver(cfg.DSN)
	}
	return cfg, nil
}

// connectionConfig turns a DBConfig into database.Config with the
// configured timeout.
func connectionConfig(c *DBConfig) *database.Config {
	cfg := database.DefaultConfig(c.Driver, c.DSN)
	if timeout := viper.GetDuration("database.connect_timeout"); timeout > 0 {
		cfg.ConnectTimeout = timeout
	}
	return cfg
}
