// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"testing"

	"github.com/lpoaura/lpodata/internal/ioconfig"
	"github.com/lpoaura/lpodata/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "lpodata_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It loads the standard config (from file, environment or defaults) and
// overrides the database name to TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	home, _ := os.UserHomeDir()

	cfg, err := ioconfig.Load(home)
	if err != nil {
		cfg = config.New()
	}

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName
	cfg.Connections = nil

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SetupTempHome creates a temporary home directory for a test, so that
// config, taxa and log files never touch the real ~/.config/lpodata.
// The directory is removed when the test finishes.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	res := t.TempDir()
	t.Setenv("HOME", res)
	return res
}
