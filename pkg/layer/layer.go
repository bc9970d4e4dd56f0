// Package layer keeps the result of a report once it is read back from
// the database, and checks it before it is handed to an output sink.
package layer

import (
	"slices"
	"strconv"
	"strings"

	"github.com/lpoaura/lpodata/pkg/ident"
)

var geometryTypes = []string{
	"POINT",
	"MULTIPOINT",
	"LINESTRING",
	"MULTILINESTRING",
	"POLYGON",
	"MULTIPOLYGON",
	"GEOMETRYCOLLECTION",
}

// Layer is a loaded report. Geometry values are kept as WKT in the
// geometry column.
type Layer struct {
	// Name is the display name of the layer.
	Name string

	// URI is the data source the layer was read from.
	URI string

	KeyColumn string
	Columns   []string
	Rows      [][]any

	// GeometryColumn is empty for tabular layers.
	GeometryColumn string

	// GeometryType is the upper case PostGIS type of the geometries,
	// GEOMETRY when they differ.
	GeometryType string
	SRID         int
}

// IsSpatial is true for layers with a geometry column.
func (l *Layer) IsSpatial() bool {
	return l.GeometryColumn != ""
}

// Len returns the number of features.
func (l *Layer) Len() int {
	return len(l.Rows)
}

// Index returns the position of a column or -1.
func (l *Layer) Index(col string) int {
	return slices.Index(l.Columns, col)
}

// Validate checks that the layer can be used: its key column exists, and
// spatial layers with features have a recognised geometry type.
func (l *Layer) Validate() error {
	if l.KeyColumn != "" && l.Index(l.KeyColumn) < 0 {
		return InvalidError(l.Name, "key column "+l.KeyColumn+" is missing")
	}
	for i, r := range l.Rows {
		if len(r) != len(l.Columns) {
			return InvalidError(l.Name, "row "+strconv.Itoa(i)+" does not match columns")
		}
	}
	if !l.IsSpatial() {
		return nil
	}
	if l.Index(l.GeometryColumn) < 0 {
		return InvalidError(l.Name, "geometry column "+l.GeometryColumn+" is missing")
	}
	if l.Len() == 0 {
		return nil
	}
	gt := strings.ToUpper(l.GeometryType)
	if gt != "GEOMETRY" && !slices.Contains(geometryTypes, gt) {
		return InvalidError(l.Name, "unknown geometry type "+l.GeometryType)
	}
	if l.SRID <= 0 {
		return InvalidError(l.Name, "geometries have no SRID")
	}
	return nil
}

// CheckExportable validates the layer and refuses empty ones.
func (l *Layer) CheckExportable() error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.Len() == 0 {
		return EmptyError(l.Name)
	}
	return nil
}

// FieldNames returns the column names as unique safe identifiers, in
// column order.
func (l *Layer) FieldNames() []string {
	return ident.Unique(l.Columns)
}

// MergeGeometryType folds the type of one more geometry into the layer
// type.
func MergeGeometryType(current, next string) string {
	next = strings.ToUpper(next)
	switch {
	case next == "":
		return current
	case current == "":
		return next
	case current == next:
		return current
	default:
		return "GEOMETRY"
	}
}
