package report

// Query is an assembled report statement with what a layer needs to be
// built on top of it.
type Query struct {
	Kind Kind

	// SQL is a single SELECT statement.
	SQL string

	KeyColumn      string
	GeometryColumn string

	// Name is the requested output name.
	Name string

	// DisplayName is the name of the resulting layer.
	DisplayName string

	Predicate Predicate
}

// IsSpatial reports whether the result carries a geometry column.
func (q *Query) IsSpatial() bool {
	return q.GeometryColumn != ""
}
