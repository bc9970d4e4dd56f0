package iostudyarea

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/pkg/db"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/lpoaura/lpodata/pkg/studyarea"
)

type tableSource struct {
	operator db.Operator
	table    string
	geom     string
	filter   report.ExtraPredicate
}

// NewTable creates an AreaSource reading the polygons of a PostGIS table,
// for example a layer of protected areas. The optional filter selects
// rows and goes through the same checks as report extra predicates.
func NewTable(op db.Operator, table, geometryColumn, filter string) lifecycle.AreaSource {
	if geometryColumn == "" {
		geometryColumn = "geom"
	}
	return &tableSource{
		operator: op,
		table:    table,
		geom:     geometryColumn,
		filter:   report.ExtraPredicate(filter),
	}
}

// SelectSQL returns the statement that reads the polygons.
func (t *tableSource) SelectSQL() (string, error) {
	if err := t.filter.Check(); err != nil {
		return "", err
	}
	if !report.IsRelation(t.table) {
		return "", ReadError(t.table, fmt.Errorf("invalid table name"))
	}
	geom := pgx.Identifier{t.geom}.Sanitize()
	sql := fmt.Sprintf("SELECT ST_AsText(%[1]s), ST_SRID(%[1]s) FROM %[2]s "+
		"WHERE %[1]s IS NOT NULL",
		geom, pgx.Identifier(strings.Split(t.table, ".")).Sanitize())
	if clause := t.filter.Clause(); clause != "" {
		sql += " " + clause
	}
	return sql, nil
}

func (t *tableSource) Features(ctx context.Context) (studyarea.StudyArea, error) {
	var res studyarea.StudyArea
	if t.operator == nil || t.operator.Pool() == nil {
		return res, iodb.NotConnectedError()
	}

	sql, err := t.SelectSQL()
	if err != nil {
		return res, err
	}

	rows, err := t.operator.Pool().Query(ctx, sql)
	if err != nil {
		return res, ReadError(t.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p studyarea.Polygon
		var srid int32
		if err = rows.Scan(&p.WKT, &srid); err != nil {
			return res, ReadError(t.table, err)
		}
		p.SRID = int(srid)
		res.Polygons = append(res.Polygons, p)
	}
	if err = rows.Err(); err != nil {
		return res, ReadError(t.table, err)
	}
	return res, nil
}
