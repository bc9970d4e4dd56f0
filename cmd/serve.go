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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/internal/ioregistry"
	"github.com/lpoaura/lpodata/internal/ioweb"
	app "github.com/lpoaura/lpodata/pkg"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve report SQL assembly over HTTP",
		Long: `Start an HTTP API that assembles report statements.

The API never runs the statements, it returns them together with the
layer data source, so a client can review or run them itself.

Endpoints:
  GET  /healthz                       liveness and version
  GET  /api/v1/taxa                   labels of the taxon registry
  POST /api/v1/reports/{kind}/sql     statements of a report
                                      (kind: extract, histogram, map, species)

Examples:
  lpodata serve
  lpodata serve --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runServe(cmd.Context(), addr)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", ":8787", "address to listen on")
	return serveCmd
}

func runServe(ctx context.Context, addr string) error {
	reg, err := ioregistry.Load(config.TaxaFilePath(homeDir))
	if err != nil {
		return err
	}

	srv, err := ioweb.New(cfg, reg, app.Version)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gn.Info("Listening on <em>%s</em>", addr)
	return srv.Run(ctx, addr)
}
