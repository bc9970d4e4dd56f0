// Package ioconfig reads lpodata settings from config.yaml and the
// environment.
package ioconfig

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix starts the name of every environment variable read by lpodata.
const EnvPrefix = "LPODATA"

// DotEnvFiles are loaded, when present, before the environment is read.
// Variables already set in the environment win.
var DotEnvFiles = []string{".env.local", ".env"}

// Load returns the configuration of homeDir: defaults, overridden by
// config.yaml, overridden by LPODATA_* variables. A missing config.yaml is
// not an error.
func Load(homeDir string) (*config.Config, error) {
	raw, err := Read(config.ConfigFilePath(homeDir))
	if err != nil {
		return nil, err
	}

	res := config.New()
	res.Update(raw.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})
	return res, nil
}

// Read returns the raw values of a config file and of the environment,
// without defaults.
func Read(path string) (*config.Config, error) {
	for _, f := range DotEnvFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, ReadConfigError(path, err)
		}
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		return nil, ReadConfigError(path, err)
	}
	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Only fields that ToOptions persists can come from the environment.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("database.host", EnvPrefix+"_DATABASE_HOST")
	_ = v.BindEnv("database.port", EnvPrefix+"_DATABASE_PORT")
	_ = v.BindEnv("database.user", EnvPrefix+"_DATABASE_USER")
	_ = v.BindEnv("database.password", EnvPrefix+"_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", EnvPrefix+"_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", EnvPrefix+"_DATABASE_SSL_MODE")

	_ = v.BindEnv("report.observations_view", EnvPrefix+"_REPORT_OBSERVATIONS_VIEW")
	_ = v.BindEnv("report.taxref_table", EnvPrefix+"_REPORT_TAXREF_TABLE")
	_ = v.BindEnv("report.output_schema", EnvPrefix+"_REPORT_OUTPUT_SCHEMA")
	_ = v.BindEnv("report.target_srid", EnvPrefix+"_REPORT_TARGET_SRID")
	_ = v.BindEnv("report.unique_tables", EnvPrefix+"_REPORT_UNIQUE_TABLES")

	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT")
	_ = v.BindEnv("log.destination", EnvPrefix+"_LOG_DESTINATION")

	_ = v.BindEnv("jobs_number", EnvPrefix+"_JOBS_NUMBER")

	v.AutomaticEnv()
}
