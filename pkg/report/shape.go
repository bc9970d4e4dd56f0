package report

import (
	"embed"
	"strings"
	"text/template"

	"github.com/lib/pq"
)

//go:embed sql/*.sql
var sqlFS embed.FS

var tmpl = template.Must(template.ParseFS(sqlFS, "sql/*.sql"))

// Shape builds the SELECT statement of one report kind from a compiled
// predicate.
type Shape interface {
	Kind() Kind

	// KeyColumn is a column with unique values, used as the layer key.
	KeyColumn() string

	// GeometryColumn is empty for tabular reports.
	GeometryColumn() string

	// Build renders the statement.
	Build(src Sources, p Predicate, req Request) (string, error)
}

type shapeData struct {
	Src      Sources
	Where    string
	Union    string
	AreaType string
}

func render(name string, data shapeData) (string, error) {
	var sb strings.Builder
	err := tmpl.ExecuteTemplate(&sb, name, data)
	if err != nil {
		return "", TemplateError(name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}

type extractShape struct{}

func (extractShape) Kind() Kind             { return Extract }
func (extractShape) KeyColumn() string      { return "id_synthese" }
func (extractShape) GeometryColumn() string { return "geom" }

func (extractShape) Build(src Sources, p Predicate, _ Request) (string, error) {
	where := p.Apply("obs.is_valid and ST_within(obs.geom, " + p.Area + ")")
	return render("extract.sql", shapeData{Src: src, Where: where})
}

type histogramShape struct{}

func (histogramShape) Kind() Kind             { return Histogram }
func (histogramShape) KeyColumn() string      { return "id" }
func (histogramShape) GeometryColumn() string { return "" }

func (histogramShape) Build(src Sources, p Predicate, _ Request) (string, error) {
	where := p.Apply("obs.is_valid and ST_within(obs.geom, " + p.Area + ")")
	return render("histogram.sql", shapeData{Src: src, Where: where})
}

// summaryMapShape filters inside every aggregate so that areal units
// without matching observations still get a row.
type summaryMapShape struct{}

func (summaryMapShape) Kind() Kind             { return SummaryMap }
func (summaryMapShape) KeyColumn() string      { return "id" }
func (summaryMapShape) GeometryColumn() string { return "geom" }

func (summaryMapShape) Build(src Sources, p Predicate, req Request) (string, error) {
	at := req.AreaType
	if at == NoArea {
		at = Grid05
	}
	if !at.valid() {
		return "", UnknownAreaTypeError(string(at))
	}
	data := shapeData{
		Src:      src,
		Where:    p.Apply("obs.is_valid and obs.is_present"),
		Union:    p.Area,
		AreaType: pq.QuoteLiteral(string(at)),
	}
	return render("summary_map.sql", data)
}

type summarySpeciesShape struct{}

func (summarySpeciesShape) Kind() Kind             { return SummarySpecies }
func (summarySpeciesShape) KeyColumn() string      { return "id" }
func (summarySpeciesShape) GeometryColumn() string { return "" }

func (summarySpeciesShape) Build(src Sources, p Predicate, _ Request) (string, error) {
	where := p.Apply(
		"obs.is_valid and obs.is_present and ST_within(obs.geom, " + p.Area + ")",
	)
	return render("summary_species.sql", shapeData{Src: src, Where: where})
}
