// Package config provides configuration management for PhenoDB.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify
//     Config
//   - Invalid options are rejected with gn.Warn() - config remains in a
//     valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//   - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Load: SpeciesID, PlatformID, DatasetID, RequireAnnotations
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use the PHENODB_ prefix with underscores for nesting:
//
//	PHENODB_DATABASE_HOST=localhost
//	PHENODB_DATABASE_PORT=5432
//	PHENODB_LOG_LEVEL=info
package config

// Config represents the complete PhenoDB configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Load contains settings specific to the load command.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and log directories reside.
	// It must be set by the CLI during init, there is no default.
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

// LoadConfig contains settings specific to the load command. All fields
// are runtime-only and arrive through CLI flags; the loader never guesses
// identifiers.
type LoadConfig struct {
	// SpeciesID scopes strain lookups for the run.
	SpeciesID int `mapstructure:"species_id" yaml:"species_id"`

	// PlatformID and DatasetID scope annotation lookups for the run.
	PlatformID int `mapstructure:"platform_id" yaml:"platform_id"`
	DatasetID  int `mapstructure:"dataset_id" yaml:"dataset_id"`

	// RequireAnnotations rejects probes with no matching annotation
	// record (by name or by target id).
	RequireAnnotations bool `mapstructure:"require_annotations" yaml:"require_annotations"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
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
			Database: "phenodb",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now the file is rewritten every time the app starts
			Destination: "file",
		},
	}

	return res
}
