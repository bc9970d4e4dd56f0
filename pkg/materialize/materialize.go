// Package materialize decides how an assembled report is published: as a
// virtual layer over the query, or as a table created from it. Creating a
// table is an ordered sequence of three statements whose progress is kept
// in a Sequence.
package materialize

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lpoaura/lpodata/pkg/ident"
	"github.com/lpoaura/lpodata/pkg/report"
)

// Mode is the way a report reaches the user.
type Mode int

const (
	// Virtual keeps the query as the layer source, nothing is written.
	Virtual Mode = iota
	// Table stores the result in a new table first.
	Table
)

func (m Mode) String() string {
	if m == Table {
		return "table"
	}
	return "virtual"
}

// TableName derives a safe table name from an output name. When suffix
// is set a timestamp is appended so that runs with the same output name
// write to different tables.
func TableName(name string, now time.Time, suffix bool) (string, error) {
	base := ident.Normalize(name)
	if base == "" {
		return "", TableNameError(name)
	}
	if !suffix {
		return base, nil
	}
	stamp := "_" + now.Format(report.DisplayLayout)
	if len(base)+len(stamp) > ident.MaxLen {
		base = strings.TrimRight(base[:ident.MaxLen-len(stamp)], "_")
	}
	return base + stamp, nil
}

// Strategy holds the settings that decide where tables are created.
type Strategy struct {
	// Schema receives materialized tables.
	Schema string

	// UniqueTables adds a timestamp to table names.
	UniqueTables bool
}

// Target is the outcome of a Strategy for one query: the layer source and,
// for tables, the statements to run first.
type Target struct {
	Mode  Mode
	Query *report.Query

	// Schema and Table are set in Table mode.
	Schema string
	Table  string

	// Sequence is nil in Virtual mode.
	Sequence *Sequence
}

// Prepare decides the target of q.
func (s Strategy) Prepare(q *report.Query, materialize bool, now time.Time) (*Target, error) {
	if !materialize {
		return &Target{Mode: Virtual, Query: q}, nil
	}

	table, err := TableName(q.Name, now, s.UniqueTables)
	if err != nil {
		return nil, err
	}
	schema := s.Schema
	if schema == "" {
		schema = "public"
	}

	plan := NewPlan(schema, table, q.SQL, q.KeyColumn)
	res := Target{
		Mode:     Table,
		Query:    q,
		Schema:   schema,
		Table:    table,
		Sequence: NewSequence(plan),
	}
	return &res, nil
}

// Relation returns what a layer reads: the quoted table, or the query
// wrapped as a subquery.
func (t *Target) Relation() string {
	if t.Mode == Table {
		return Qualified(t.Schema, t.Table)
	}
	return "(" + t.Query.SQL + ")"
}

// KeyColumn is the unique column of the layer.
func (t *Target) KeyColumn() string {
	return t.Query.KeyColumn
}

// Qualified quotes a schema-qualified table name.
func Qualified(schema, table string) string {
	return pgx.Identifier{schema, table}.Sanitize()
}
