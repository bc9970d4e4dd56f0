// Package config provides configuration management for lpodata.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Connections: named database connections
//   - Report: observations_view, taxref_table, output_schema, target_srid,
//     unique_tables
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use LPODATA_ prefix with underscores for nesting:
//
//	LPODATA_DATABASE_HOST=localhost
//	LPODATA_DATABASE_PORT=5432
//	LPODATA_REPORT_TARGET_SRID=2154
//	LPODATA_LOG_LEVEL=info
package config

import (
	"maps"
	"runtime"
	"slices"
)

// Config represents the complete lpodata configuration.
type Config struct {
	// Database contains settings of the default PostgreSQL connection.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Connections are additional named connections. A report can pick one
	// of them by name, the default connection is used otherwise.
	Connections map[string]DatabaseConfig `mapstructure:"connections" yaml:"connections"`

	// Report contains the relations reports are built on and the settings
	// of materialized tables.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations,
	// such as refreshing taxon options one rank per worker.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ReportConfig contains settings shared by all reports.
type ReportConfig struct {
	// ObservationsView is the enriched observations view every report
	// reads from.
	ObservationsView string `mapstructure:"observations_view" yaml:"observations_view"`

	// TaxrefTable is the TAXREF taxonomic reference table.
	TaxrefTable string `mapstructure:"taxref_table" yaml:"taxref_table"`

	// OutputSchema is the schema where materialized tables are created.
	OutputSchema string `mapstructure:"output_schema" yaml:"output_schema"`

	// TargetSRID is the spatial reference of the geometry columns of the
	// database. Study area polygons are transformed to it.
	TargetSRID int `mapstructure:"target_srid" yaml:"target_srid"`

	// UniqueTables adds the run timestamp to materialized table names, so
	// two runs with the same output name do not replace each other's table.
	UniqueTables bool `mapstructure:"unique_tables" yaml:"unique_tables"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "geonature_lpo",
			SSLMode:  "disable",
		},
		Connections: map[string]DatabaseConfig{},
		Report: ReportConfig{
			ObservationsView: "src_lpodatas.v_c_observations",
			TaxrefTable:      "taxonomie.taxref",
			OutputSchema:     "public",
			TargetSRID:       2154, // RGF93 / Lambert-93
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// Connection returns the settings of a named connection. Empty name and
// "default" return the default connection.
func (c *Config) Connection(name string) (*DatabaseConfig, error) {
	if name == "" || name == "default" {
		return &c.Database, nil
	}
	if db, ok := c.Connections[name]; ok {
		return &db, nil
	}
	return nil, UnknownConnectionError(name, c.ConnectionNames())
}

// ConnectionNames returns sorted names of all known connections,
// including "default".
func (c *Config) ConnectionNames() []string {
	res := slices.Sorted(maps.Keys(c.Connections))
	return append([]string{"default"}, res...)
}
