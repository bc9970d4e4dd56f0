// Package lifecycle declares the impure steps of a report run. A run
// assembles a query, optionally materializes it, loads it as a layer and
// exports the layer. Implementations live in internal/io* packages.
package lifecycle

import (
	"context"

	"github.com/lpoaura/lpodata/pkg/layer"
	"github.com/lpoaura/lpodata/pkg/materialize"
	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/lpoaura/lpodata/pkg/taxon"
)

// Materializer runs the statements of a table target. The statements of
// one Sequence run on a single connection, and two runs writing the same
// table never overlap.
type Materializer interface {
	// Materialize runs the remaining steps of seq. A sequence stopped
	// after its table was created is resumed from the key step.
	Materialize(ctx context.Context, seq *materialize.Sequence) error
}

// Loader reads a target back as a layer.
type Loader interface {
	Load(ctx context.Context, t *materialize.Target) (*layer.Layer, error)
}

// Exporter writes a layer to a file.
type Exporter interface {
	// Export writes l to path and returns the number of written
	// features.
	Export(ctx context.Context, l *layer.Layer, path string) (int, error)
}

// Refresher reads current taxon labels per rank from the observation
// source.
type Refresher interface {
	Refresh(ctx context.Context) (map[taxon.Rank][]string, error)
}

// AreaSource provides the polygons of a study area.
type AreaSource interface {
	Features(ctx context.Context) (studyarea.StudyArea, error)
}
