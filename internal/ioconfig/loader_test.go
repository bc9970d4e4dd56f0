package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lpoaura/lpodata/internal/ioconfig"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := config.ConfigDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yaml"), []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "geonature_lpo", cfg.Database.Database)
	assert.Equal(t, 2154, cfg.Report.TargetSRID)
	assert.Equal(t, home, cfg.HomeDir)
}

func TestLoadFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
database:
  host: db.lpo.fr
  port: 5433
connections:
  prod:
    host: prod.lpo.fr
    database: gnlpo
report:
  output_schema: rapports
  unique_tables: true
log:
  level: bogus
`)
	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "db.lpo.fr", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User, "default is kept")
	assert.Equal(t, "rapports", cfg.Report.OutputSchema)
	assert.True(t, cfg.Report.UniqueTables)
	assert.Equal(t, "info", cfg.Log.Level, "invalid value is ignored")

	prod, err := cfg.Connection("prod")
	require.NoError(t, err)
	assert.Equal(t, "prod.lpo.fr", prod.Host)
	assert.Equal(t, 5432, prod.Port)
}

func TestLoadEnv(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "database:\n  host: from-file\n")
	t.Setenv("LPODATA_DATABASE_HOST", "from-env")
	t.Setenv("LPODATA_REPORT_TARGET_SRID", "4326")

	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, 4326, cfg.Report.TargetSRID)
}

func TestLoadMalformed(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "database: [unclosed\n")
	_, err := ioconfig.Load(home)
	assert.Error(t, err)
}
