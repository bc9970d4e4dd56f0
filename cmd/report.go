package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/internal/ioexport"
	"github.com/lpoaura/lpodata/internal/iolayer"
	"github.com/lpoaura/lpodata/internal/iologger"
	"github.com/lpoaura/lpodata/internal/iomaterialize"
	"github.com/lpoaura/lpodata/internal/ioregistry"
	"github.com/lpoaura/lpodata/internal/iostudyarea"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/lpoaura/lpodata/pkg/datasource"
	"github.com/lpoaura/lpodata/pkg/db"
	"github.com/lpoaura/lpodata/pkg/layer"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
	"github.com/lpoaura/lpodata/pkg/materialize"
	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/lpoaura/lpodata/pkg/taxon"
	"github.com/spf13/cobra"
)

// reportRun carries one report from flags to its output.
type reportRun struct {
	kind  report.Kind
	flags *reportFlags
	log   *slog.Logger
	out   io.Writer

	builder *datasource.Builder
	op      db.Operator
}

func runReport(cmd *cobra.Command, kind report.Kind, f *reportFlags) error {
	log, runID := iologger.Run(kind.String())
	r := &reportRun{
		kind:  kind,
		flags: f,
		log:   log,
		out:   cmd.OutOrStdout(),
	}
	defer r.close()

	start := time.Now()
	log.Info("Report started", "name", f.name, "table", f.table)
	if err := r.run(cmd.Context()); err != nil {
		log.Error("Report failed", "error", err)
		gn.PrintErrorMessage(err)
		return err
	}
	dur := gnfmt.TimeString(time.Since(start).Seconds())
	log.Info("Report finished", "duration", dur)
	gn.Info("Report <em>%s</em> done in %s", runID, dur)
	return nil
}

func (r *reportRun) run(ctx context.Context) error {
	in := r.flags.input()

	var err error
	if r.builder, err = datasource.NewResolver(cfg).Resolve(in.Connection); err != nil {
		return err
	}

	if in.Area, err = r.studyArea(ctx); err != nil {
		return err
	}

	now := time.Now()
	req, err := in.Request(r.kind, now)
	if err != nil {
		return err
	}

	reg, err := ioregistry.Load(config.TaxaFilePath(homeDir))
	if err != nil {
		return err
	}

	a, err := report.New(
		report.NewSources(cfg.Report),
		taxon.NewCompiler(reg),
		cfg.Report.TargetSRID,
	)
	if err != nil {
		return err
	}

	q, err := a.Assemble(req)
	if err != nil {
		return err
	}
	for _, w := range report.Warnings(req, q) {
		r.log.Warn("Report warning", "warning", w)
		gn.Warn(w)
	}

	strategy := materialize.Strategy{
		Schema:       cfg.Report.OutputSchema,
		UniqueTables: cfg.Report.UniqueTables,
	}
	target, err := strategy.Prepare(q, req.Materialize, now)
	if err != nil {
		return err
	}

	if r.flags.dryRun {
		return r.printSQL(target)
	}

	if err = r.connect(ctx); err != nil {
		return err
	}

	if target.Mode == materialize.Table {
		if err = iomaterialize.New(r.op).Materialize(ctx, target.Sequence); err != nil {
			return err
		}
		gn.Info("Table <em>%s</em> is ready", target.Relation())
	}

	l, err := iolayer.New(r.op, r.builder).Load(ctx, target)
	if err != nil {
		return err
	}
	r.summary(l)

	if r.flags.export == "" {
		return nil
	}
	return r.export(ctx, l)
}

// studyArea reads the polygons of the --area file or --area-table.
func (r *reportRun) studyArea(ctx context.Context) ([]studyarea.Polygon, error) {
	var src lifecycle.AreaSource
	switch {
	case r.flags.area != "":
		src = iostudyarea.NewFileSRID(r.flags.area, r.flags.areaSRID)
	case r.flags.areaTable != "":
		if err := r.connect(ctx); err != nil {
			return nil, err
		}
		src = iostudyarea.NewTable(r.op, r.flags.areaTable,
			r.flags.areaGeom, r.flags.areaFilter)
	default:
		return nil, AreaFlagError()
	}

	sa, err := src.Features(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Info("Study area read", "polygons", sa.Len())
	return sa.Polygons, nil
}

func (r *reportRun) connect(ctx context.Context) error {
	if r.op != nil {
		return nil
	}
	dbCfg := r.builder.Database()
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &dbCfg); err != nil {
		return err
	}
	r.op = op

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		dbCfg.User, dbCfg.Host, dbCfg.Port, dbCfg.Database)
	return nil
}

func (r *reportRun) close() {
	if r.op != nil {
		r.op.Close()
	}
}

func (r *reportRun) printSQL(t *materialize.Target) error {
	stmts := []string{t.Query.SQL}
	if t.Mode == materialize.Table {
		stmts = t.Sequence.Plan().SQL()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- %s\n", t.Query.DisplayName)
	fmt.Fprintf(&b, "-- %s\n\n", iolayer.URI(r.builder, t))
	for _, s := range stmts {
		b.WriteString(strings.TrimSpace(s))
		b.WriteString(";\n\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *reportRun) summary(l *layer.Layer) {
	gn.Info("Layer <em>%s</em>: %s features",
		l.Name, humanize.Comma(int64(l.Len())))
	if l.Len() == 0 {
		gn.Warn("The report selected no observation")
	}
	fmt.Fprintln(r.out, l.URI)
}

func (r *reportRun) export(ctx context.Context, l *layer.Layer) error {
	ex, err := ioexport.New(r.flags.export)
	if err != nil {
		return err
	}
	n, err := ex.Export(ctx, l, r.flags.export)
	if err != nil {
		return err
	}
	r.log.Info("Layer exported", "path", r.flags.export, "rows", n)
	return nil
}
