package ioexport

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/jackc/pgx/v5"
	"github.com/lpoaura/lpodata/pkg/ident"
	"github.com/lpoaura/lpodata/pkg/layer"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// MetadataTable describes the layers of an exported SQLite file.
const MetadataTable = "lpodata_layers"

type sqliteExporter struct{}

// NewSQLite creates an Exporter writing SQLite files.
func NewSQLite() lifecycle.Exporter {
	return &sqliteExporter{}
}

func (s *sqliteExporter) Export(
	ctx context.Context,
	l *layer.Layer,
	path string,
) (int, error) {
	if err := l.CheckExportable(); err != nil {
		return 0, err
	}
	if err := removeFile(path); err != nil {
		return 0, WriteError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, WriteError(path, err)
	}
	defer db.Close()

	table := TableName(l.Name)
	names := fields(l, false)
	ddl := createSQL(table, names, columnTypes(l))
	if _, err = db.ExecContext(ctx, ddl); err != nil {
		return 0, WriteError(path, err)
	}
	if err = writeMetadata(ctx, db, table, l); err != nil {
		return 0, WriteError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, WriteError(path, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertSQL(table, names))
	if err != nil {
		return 0, WriteError(path, err)
	}
	defer stmt.Close()

	gn.Info("Exporting <em>%d</em> features to %s", l.Len(), path)
	bar := pb.Full.Start(l.Len())
	bar.Set("prefix", "features ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	vals := make([]any, len(names))
	for _, row := range l.Rows {
		for i, v := range row {
			vals[i] = sqliteValue(v)
		}
		if _, err = stmt.ExecContext(ctx, vals...); err != nil {
			return 0, WriteError(path, err)
		}
		bar.Increment()
	}
	if err = tx.Commit(); err != nil {
		return 0, WriteError(path, err)
	}

	slog.Info("Layer exported", "layer", l.Name, "path", path,
		"format", "sqlite", "features", l.Len())
	return l.Len(), nil
}

// TableName is the SQLite table of a layer.
func TableName(layerName string) string {
	res := ident.Normalize(layerName)
	if res == "" {
		return "layer"
	}
	return res
}

func columnTypes(l *layer.Layer) []string {
	res := make([]string, len(l.Columns))
	for i := range l.Columns {
		res[i] = "TEXT"
		for _, row := range l.Rows {
			if row[i] != nil {
				res[i] = sqlType(row[i])
				break
			}
		}
	}
	return res
}

func sqlType(v any) string {
	switch v.(type) {
	case int64, bool:
		return "INTEGER"
	case float64:
		return "REAL"
	}
	return "TEXT"
}

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func createSQL(table string, names, types []string) string {
	cols := make([]string, len(names))
	for i := range names {
		cols[i] = quote(names[i]) + " " + types[i]
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quote(table), strings.Join(cols, ", "))
}

func insertSQL(table string, names []string) string {
	cols := make([]string, len(names))
	marks := make([]string, len(names))
	for i := range names {
		cols[i] = quote(names[i])
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(table), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

func writeMetadata(ctx context.Context, db *sql.DB, table string, l *layer.Layer) error {
	ddl := `CREATE TABLE ` + MetadataTable + ` (
  table_name TEXT PRIMARY KEY,
  layer_name TEXT,
  geometry_column TEXT,
  geometry_type TEXT,
  srid INTEGER,
  source TEXT,
  features INTEGER,
  created TEXT
)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return err
	}

	var geom, gtype, srid any
	if l.IsSpatial() {
		geom = l.FieldNames()[l.Index(l.GeometryColumn)]
		gtype = l.GeometryType
		srid = l.SRID
	}
	_, err := db.ExecContext(ctx,
		"INSERT INTO "+MetadataTable+" VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		table, l.Name, geom, gtype, srid, l.URI, l.Len(),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func sqliteValue(v any) any {
	switch x := v.(type) {
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	case time.Time:
		return text(x)
	}
	return v
}
