// Package ioexport writes loaded layers to files. SQLite files keep the
// geometry as WKT with a metadata table describing the layer, CSV files
// keep it in a wkt column.
package ioexport

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lpoaura/lpodata/pkg/layer"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
)

// Format is an output file format.
type Format string

const (
	SQLite Format = "sqlite"
	CSV    Format = "csv"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sqlite", ".db", ".sqlite3":
		return SQLite, nil
	case ".csv":
		return CSV, nil
	}
	return "", FormatError(path)
}

// New returns the Exporter of a file path.
func New(path string) (lifecycle.Exporter, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if f == CSV {
		return NewCSV(), nil
	}
	return NewSQLite(), nil
}

// fields returns the output field names of l. The geometry field is
// called wkt when wktName is set.
func fields(l *layer.Layer, wktName bool) []string {
	res := l.FieldNames()
	if wktName && l.IsSpatial() {
		res[l.Index(l.GeometryColumn)] = "wkt"
	}
	return res
}

func removeFile(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// text renders a value for text based sinks. Dates at midnight keep only
// their day.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.Equal(x.Truncate(24 * time.Hour)) {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	}
	return ""
}
