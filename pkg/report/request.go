package report

import (
	"time"

	"github.com/lpoaura/lpodata/pkg/period"
	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/lpoaura/lpodata/pkg/taxon"
)

// DisplayLayout formats the timestamp of layer display names.
const DisplayLayout = "20060102_150405"

// Request is one report run: what to select and how to publish it.
type Request struct {
	Kind Kind

	// Area delimits the observations taken into account.
	Area studyarea.StudyArea

	// Taxa restricts observations per taxonomic rank.
	Taxa taxon.Selection

	// Period restricts observations in time.
	Period period.Filter

	// Extra is appended verbatim to the compiled filter.
	Extra ExtraPredicate

	// AreaType is the areal unit of a summary map.
	AreaType AreaType

	// Name is the requested output name. Kind.DefaultName is used when it
	// is empty.
	Name string

	// Materialize creates a table from the result instead of a virtual
	// layer.
	Materialize bool

	// Connection is the name of the database connection, empty for the
	// default one.
	Connection string

	// Now is the reference time of the run. Relative periods and display
	// names derive from it.
	Now time.Time
}

// OutputName returns the requested name or the default name of the kind.
func (r Request) OutputName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Kind.DefaultName()
}

// DisplayName returns the layer name shown to the user,
// "<name> <YYYYMMDD_HHMMSS>".
func DisplayName(name string, now time.Time) string {
	return name + " " + now.Format(DisplayLayout)
}
