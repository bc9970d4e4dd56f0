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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/internal/ioregistry"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/lpoaura/lpodata/pkg/taxon"
	"github.com/spf13/cobra"
)

// getTaxaCmd returns the taxa command with its list and refresh
// subcommands.
func getTaxaCmd() *cobra.Command {
	taxaCmd := &cobra.Command{
		Use:   "taxa",
		Short: "Show or rebuild the labels accepted by taxonomic filters",
		Long: `Manage the registry of taxonomic labels kept in
~/.config/lpodata/taxa.yaml.

Report filters such as --groupe-taxo or --famille accept the labels of
the registry. A rank with an empty list accepts any label.`,
	}

	taxaCmd.AddCommand(getTaxaListCmd(), getTaxaRefreshCmd())
	return taxaCmd
}

func getTaxaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [rank...]",
		Short: "List the labels of the registry",
		Long: `List the labels accepted for each taxonomic rank.

Examples:
  lpodata taxa list
  lpodata taxa list groupe_taxo
  lpodata taxa list family order`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTaxaList(cmd.OutOrStdout(), args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
}

func getTaxaRefreshCmd() *cobra.Command {
	var connection string

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild the registry from the observation source",
		Long: `Rebuild taxa.yaml from the labels found in the observations.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Reads the distinct labels of every rank, concurrently
  3. Replaces the registry and writes taxa.yaml

Examples:
  lpodata taxa refresh
  lpodata taxa refresh --connection prod`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTaxaRefresh(cmd.Context(), connection)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	refreshCmd.Flags().StringVarP(&connection, "connection", "c",
		"", "name of the database connection from config.yaml")
	return refreshCmd
}

func runTaxaList(w io.Writer, args []string) error {
	reg, err := ioregistry.Load(config.TaxaFilePath(homeDir))
	if err != nil {
		return err
	}

	ranks := taxon.Ranks
	if len(args) > 0 {
		ranks = nil
		for _, a := range args {
			r, err := taxon.ParseRank(a)
			if err != nil {
				return err
			}
			ranks = append(ranks, r)
		}
	}
	return writeRegistry(w, reg, ranks)
}

func writeRegistry(w io.Writer, reg *taxon.Registry, ranks []taxon.Rank) error {
	for _, r := range ranks {
		labels := reg.Options(r)
		if _, err := fmt.Fprintf(w, "%s (--%s): %d labels\n",
			r, r.Flag(), len(labels)); err != nil {
			return err
		}
		for i, l := range labels {
			if _, err := fmt.Fprintf(w, "  %3d  %s\n", i, l); err != nil {
				return err
			}
		}
	}
	return nil
}

func runTaxaRefresh(ctx context.Context, connection string) error {
	dbCfg, err := cfg.Connection(connection)
	if err != nil {
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, dbCfg); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		dbCfg.User, dbCfg.Host, dbCfg.Port, dbCfg.Database)

	path := config.TaxaFilePath(homeDir)
	reg, err := ioregistry.Load(path)
	if err != nil {
		return err
	}

	start := time.Now()
	src := report.NewSources(cfg.Report)
	opts, err := ioregistry.NewRefresher(op, src.Observations, cfg.JobsNumber).
		Refresh(ctx)
	if err != nil {
		return err
	}

	reg.Replace(opts)
	if err = ioregistry.Save(path, reg); err != nil {
		return err
	}

	var total int
	for _, labels := range opts {
		total += len(labels)
	}
	gn.Info("Registry <em>%s</em> refreshed with %s labels in %s",
		path, humanize.Comma(int64(total)),
		gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}
