/*
Copyright © 2025 LPO Auvergne-Rhône-Alpes

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/internal/ioconfig"
	"github.com/lpoaura/lpodata/internal/iofs"
	"github.com/lpoaura/lpodata/internal/iologger"
	app "github.com/lpoaura/lpodata/pkg"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd returns the root command with every subcommand attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "lpodata",
		Short:   "LPO observation reports over a GeoNature PostGIS database",
		Long: `lpodata builds reports of the observations kept in a GeoNature
PostGIS database, restricted to a study area, a taxonomic selection and
a period.

Reports:
  - extract:   every observation inside the study area
  - histogram: records, species, observers and dates per taxonomic group
  - map:       summary per grid cell or commune intersecting the study area
  - species:   summary per species with conservation statuses

A report is either read through a query (virtual layer) or materialized
into a table with --table. Its rows can be exported to SQLite or CSV.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (LPODATA_*)
  3. Config file (~/.config/lpodata/config.yaml)
  4. Built-in defaults

Environment Variables:
  LPODATA_DATABASE_HOST           PostgreSQL host
  LPODATA_DATABASE_PORT           PostgreSQL port
  LPODATA_DATABASE_USER           PostgreSQL user
  LPODATA_DATABASE_PASSWORD       PostgreSQL password
  LPODATA_DATABASE_DATABASE       Database name
  LPODATA_REPORT_OUTPUT_SCHEMA    Schema of materialized tables
  LPODATA_LOG_LEVEL               Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for lpodata")

	rootCmd.AddCommand(
		getExtractCmd(),
		getHistogramCmd(),
		getMapCmd(),
		getSpeciesCmd(),
		getTaxaCmd(),
		getCreateCmd(),
		getServeCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// replaced by the user's settings once config.yaml is read
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureTaxaFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
