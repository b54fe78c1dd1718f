package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNew verifies the default config is complete and valid without any
// options applied.
func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "postgres", cfg.Database.Password)
	assert.Equal(t, "phenodb", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	// Runtime-only fields start zeroed; the CLI fills them in.
	assert.Equal(t, 0, cfg.Load.SpeciesID)
	assert.Equal(t, 0, cfg.Load.PlatformID)
	assert.Equal(t, 0, cfg.Load.DatasetID)
	assert.False(t, cfg.Load.RequireAnnotations)
	assert.Equal(t, "", cfg.HomeDir)
}

// TestUpdate verifies options mutate the config through Update.
func TestUpdate(t *testing.T) {
	cfg := New()

	cfg.Update([]Option{
		OptDatabaseHost("db.example.org"),
		OptDatabasePort(5433),
		OptDatabaseUser("curator"),
		OptDatabasePassword("secret"),
		OptDatabaseDatabase("phenodb_test"),
		OptDatabaseSSLMode("require"),
		OptLogLevel("debug"),
		OptLogFormat("text"),
		OptLogDestination("stderr"),
	})

	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "curator", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "phenodb_test", cfg.Database.Database)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

// TestUpdate_InvalidValues verifies invalid options are ignored and the
// config keeps its previous valid state.
func TestUpdate_InvalidValues(t *testing.T) {
	cfg := New()

	cfg.Update([]Option{
		OptDatabaseHost(""),
		OptDatabaseHost("   "),
		OptDatabasePort(0),
		OptDatabasePort(-5),
		OptDatabaseSSLMode("sometimes"),
		OptLogLevel("verbose"),
		OptLogFormat("xml"),
		OptLogDestination("syslog"),
		OptLoadSpeciesID(-1),
	})

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "file", cfg.Log.Destination)
	assert.Equal(t, 0, cfg.Load.SpeciesID)
}

// TestUpdate_Normalization verifies string options trim whitespace and
// enums lowercase their input.
func TestUpdate_Normalization(t *testing.T) {
	cfg := New()

	cfg.Update([]Option{
		OptDatabaseHost("  db.example.org  "),
		OptDatabaseSSLMode("REQUIRE"),
		OptLogLevel(" Debug "),
	})

	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestLoadOptions verifies the runtime-only load options.
func TestLoadOptions(t *testing.T) {
	cfg := New()

	req := true
	cfg.Update([]Option{
		OptLoadSpeciesID(1),
		OptLoadPlatformID(2),
		OptLoadDatasetID(7),
		OptLoadRequireAnnotations(&req),
	})

	assert.Equal(t, 1, cfg.Load.SpeciesID)
	assert.Equal(t, 2, cfg.Load.PlatformID)
	assert.Equal(t, 7, cfg.Load.DatasetID)
	assert.True(t, cfg.Load.RequireAnnotations)

	// nil means "flag not given": the current value stays.
	cfg.Update([]Option{OptLoadRequireAnnotations(nil)})
	assert.True(t, cfg.Load.RequireAnnotations)
}

// TestToOptions verifies the persistent fields round-trip through
// ToOptions and runtime-only fields do not.
func TestToOptions(t *testing.T) {
	src := New()
	src.Update([]Option{
		OptDatabaseHost("db.example.org"),
		OptDatabasePort(5433),
		OptDatabaseUser("curator"),
		OptLogLevel("debug"),
		OptLoadSpeciesID(1),
		OptHomeDir("/home/curator"),
	})

	dst := New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "db.example.org", dst.Database.Host)
	assert.Equal(t, 5433, dst.Database.Port)
	assert.Equal(t, "curator", dst.Database.User)
	assert.Equal(t, "debug", dst.Log.Level)

	assert.Equal(t, 0, dst.Load.SpeciesID)
	assert.Equal(t, "", dst.HomeDir)
}

// TestPaths verifies derived filesystem locations.
func TestPaths(t *testing.T) {
	home := "/home/curator"

	assert.Equal(t, "/home/curator/.config/phenodb", ConfigDir(home))
	assert.Equal(t,
		"/home/curator/.local/share/phenodb/logs", LogDir(home))
	assert.Equal(t,
		"/home/curator/.config/phenodb/config.yaml", ConfigFilePath(home))
}
