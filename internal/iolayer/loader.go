// Package iolayer reads a report target, virtual or materialized, into a
// layer.Layer.
package iolayer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/pkg/datasource"
	"github.com/lpoaura/lpodata/pkg/db"
	"github.com/lpoaura/lpodata/pkg/layer"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
	"github.com/lpoaura/lpodata/pkg/materialize"
)

// Names of the helper columns added to spatial queries.
const (
	wktCol   = "lpodata_wkt"
	gtypeCol = "lpodata_geometry_type"
	sridCol  = "lpodata_srid"
)

type loader struct {
	operator db.Operator
	builder  *datasource.Builder
}

// New creates a Loader that queries through op. URIs of loaded layers are
// built by b, which must describe the same database.
func New(op db.Operator, b *datasource.Builder) lifecycle.Loader {
	return &loader{operator: op, builder: b}
}

// SelectSQL returns the statement that reads a target. Geometries are
// read as WKT together with their type and SRID.
func SelectSQL(t *materialize.Target) string {
	key := pgx.Identifier{t.KeyColumn()}.Sanitize()
	if !t.Query.IsSpatial() {
		return fmt.Sprintf("SELECT l.* FROM %s AS l ORDER BY l.%s",
			t.Relation(), key)
	}
	geom := "l." + pgx.Identifier{t.Query.GeometryColumn}.Sanitize()
	return fmt.Sprintf(
		"SELECT l.*, ST_AsText(%[1]s) AS %[2]s, GeometryType(%[1]s) AS %[3]s, "+
			"ST_SRID(%[1]s) AS %[4]s FROM %[5]s AS l ORDER BY l.%[6]s",
		geom, wktCol, gtypeCol, sridCol, t.Relation(), key,
	)
}

// URI returns the data source of a target.
func URI(b *datasource.Builder, t *materialize.Target) datasource.URI {
	if t.Mode == materialize.Table {
		return b.SetDataSource(t.Schema, t.Table,
			t.Query.GeometryColumn, t.KeyColumn())
	}
	return b.SetDataSource("", t.Relation(),
		t.Query.GeometryColumn, t.KeyColumn())
}

func (l *loader) Load(
	ctx context.Context,
	t *materialize.Target,
) (*layer.Layer, error) {
	if l.operator == nil || l.operator.Pool() == nil {
		return nil, iodb.NotConnectedError()
	}
	start := time.Now()

	res := layer.Layer{
		Name:           t.Query.DisplayName,
		KeyColumn:      t.KeyColumn(),
		GeometryColumn: t.Query.GeometryColumn,
	}
	if l.builder != nil {
		res.URI = URI(l.builder, t).String()
	}

	sql := SelectSQL(t)
	rows, err := l.operator.Pool().Query(ctx, sql)
	if err != nil {
		slog.Error("Layer query failed", "layer", res.Name, "sql", sql, "error", err)
		return nil, iodb.QueryError(err)
	}
	defer rows.Close()

	var cols []string
	for _, fd := range rows.FieldDescriptions() {
		cols = append(cols, fd.Name)
	}
	spatial := res.IsSpatial()
	width := len(cols)
	if spatial {
		width -= 3
	}
	res.Columns = cols[:width]
	geomIdx := res.Index(res.GeometryColumn)

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, iodb.QueryError(err)
		}
		row := make([]any, width)
		for i := range width {
			row[i] = Normalize(vals[i])
		}
		if spatial && geomIdx >= 0 {
			row[geomIdx] = Normalize(vals[width])
			if gt, ok := vals[width+1].(string); ok {
				res.GeometryType = layer.MergeGeometryType(res.GeometryType, gt)
			}
			if srid, ok := vals[width+2].(int32); ok && res.SRID == 0 {
				res.SRID = int(srid)
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, iodb.QueryError(err)
	}

	slog.Info("Layer loaded",
		"layer", res.Name,
		"features", humanize.Comma(int64(res.Len())),
		"geometry", res.GeometryType,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)

	if err = res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
