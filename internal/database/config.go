package database

import "time"

// Config holds the settings needed to open a connection.
type Config struct {
	// Driver is the database/sql driver name (mysql, postgres, pgx, sqlserver, mssql, oracle).
	Driver string

	// DSN is the data source name passed verbatim to the driver.
	// Example: "root:root@tcp(127.0.0.1:3306)/app"
	DSN string

	// ConnectTimeout bounds opening and pinging the connection.
	ConnectTimeout time.Duration
}

// DefaultConfig returns settings for the given driver and DSN.
func DefaultConfig(driver, dsn string) *Config {
	return &Config{
		Driver:         driver,
		DSN:            dsn,
		ConnectTimeout: 10 * time.Second,
	}
}
