package ioexport

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/lpoaura/lpodata/pkg/layer"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
)

type csvExporter struct{}

// NewCSV creates an Exporter writing comma separated files with a header
// line.
func NewCSV() lifecycle.Exporter {
	return &csvExporter{}
}

func (c *csvExporter) Export(
	ctx context.Context,
	l *layer.Layer,
	path string,
) (int, error) {
	if err := l.CheckExportable(); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, WriteError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(fields(l, true)); err != nil {
		return 0, WriteError(path, err)
	}

	rec := make([]string, len(l.Columns))
	for i, row := range l.Rows {
		if i%1000 == 0 {
			if err = ctx.Err(); err != nil {
				return 0, WriteError(path, err)
			}
		}
		for j, v := range row {
			rec[j] = text(v)
		}
		if err = w.Write(rec); err != nil {
			return 0, WriteError(path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return 0, WriteError(path, err)
	}

	slog.Info("Layer exported", "layer", l.Name, "path", path,
		"format", "csv", "features", l.Len())
	return l.Len(), nil
}
