// Package report assembles the SQL statements of biodiversity reports.
// Every report kind combines the same compiled predicate (study area,
// taxa, period and an optional raw extra predicate) with its own SELECT
// shape.
package report

import (
	"time"

	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/lpoaura/lpodata/pkg/taxon"
)

// Assembler compiles requests into queries.
type Assembler interface {
	// Compile validates the filters of req and compiles them.
	Compile(req Request) (Predicate, error)

	// Assemble builds the query of req.
	Assemble(req Request) (*Query, error)
}

type assembler struct {
	src     Sources
	taxa    *taxon.Compiler
	encoder studyarea.Encoder
	shapes  map[Kind]Shape
}

// New creates an Assembler reading from src. Taxonomic labels are
// validated by taxa and study areas are reprojected to targetSRID.
func New(src Sources, taxa *taxon.Compiler, targetSRID int) (Assembler, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if taxa == nil {
		taxa = taxon.NewCompiler(nil)
	}
	res := assembler{
		src:     src,
		taxa:    taxa,
		encoder: studyarea.Encoder{TargetSRID: targetSRID},
		shapes:  make(map[Kind]Shape),
	}
	for _, s := range []Shape{
		extractShape{}, histogramShape{}, summaryMapShape{}, summarySpeciesShape{},
	} {
		res.shapes[s.Kind()] = s
	}
	return &res, nil
}

func (a *assembler) Compile(req Request) (Predicate, error) {
	var res Predicate
	var err error

	if err = req.Extra.Check(); err != nil {
		return res, err
	}
	res.Extra = req.Extra.Clause()

	if res.Taxa, err = a.taxa.Compile(req.Taxa); err != nil {
		return res, err
	}

	if res.Period, err = req.Period.Compile(now(req)); err != nil {
		return res, err
	}

	enc, err := a.encoder.Encode(req.Area)
	if err != nil {
		return res, err
	}
	res.Area = enc.Union()
	res.Polygons = enc.Count
	res.Skipped = enc.Skipped

	return res, nil
}

func (a *assembler) Assemble(req Request) (*Query, error) {
	shape, ok := a.shapes[req.Kind]
	if !ok {
		return nil, UnknownKindError(req.Kind.String())
	}

	p, err := a.Compile(req)
	if err != nil {
		return nil, err
	}

	sql, err := shape.Build(a.src, p, req)
	if err != nil {
		return nil, err
	}

	name := req.OutputName()
	res := Query{
		Kind:           req.Kind,
		SQL:            sql,
		KeyColumn:      shape.KeyColumn(),
		GeometryColumn: shape.GeometryColumn(),
		Name:           name,
		DisplayName:    DisplayName(name, now(req)),
		Predicate:      p,
	}
	return &res, nil
}

func now(req Request) time.Time {
	if req.Now.IsZero() {
		return time.Now()
	}
	return req.Now
}
