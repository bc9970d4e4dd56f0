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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/pkg/schema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var (
		forceCreate bool
		connection  string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the observation source schema on an empty database",
		Long: `Create the tables reports read from on a development database.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks whether the observation source already exists
  3. Enables PostGIS and creates the GeoNature schemas
  4. Creates observation, TAXREF, geography and status tables
     using GORM AutoMigrate

A production GeoNature database already has these relations, mostly as
views. The command asks for confirmation when the observation source is
found. Use --force to skip it.

Examples:
  lpodata create
  lpodata create --connection dev
  lpodata create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), connection, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "create tables without confirmation")
	createCmd.Flags().StringVarP(&connection, "connection", "c",
		"", "name of the database connection from config.yaml")

	return createCmd
}

func runCreate(ctx context.Context, connection string, force bool) error {
	dbCfg, err := cfg.Connection(connection)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, dbCfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		dbCfg.User, dbCfg.Host, dbCfg.Port, dbCfg.Database)

	obs := schema.Observation{}.TableName()
	sch, tbl, _ := strings.Cut(obs, ".")
	exists, err := op.TableExists(ctx, sch, tbl)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if exists && !force {
		gn.Warn("\nWarning: <em>%s</em> already exists.", obs)
		gn.Warn("Creating tables may alter a GeoNature database.")
		fmt.Print("\nDo you want to continue? (yes/no): ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			gn.Warn("Failed to read user input")
			return err
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	gdb, err := op.GORM()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Creating schema using GORM AutoMigrate...")
	if err = schema.Migrate(gdb.WithContext(ctx)); err != nil {
		err = iodb.ExecError(0, "AutoMigrate", err)
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(`Database schema creation complete!

Next steps:
  - Run 'lpodata taxa refresh' once observations are loaded
  - Run 'lpodata histogram --area zone.wkt' for a first report`)
	return nil
}
