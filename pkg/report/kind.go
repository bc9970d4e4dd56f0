package report

import "strings"

// Kind selects the shape of a report.
type Kind int

const (
	Unknown Kind = iota
	// Extract lists raw observations inside the study area.
	Extract
	// Histogram counts observations per taxonomic group.
	Histogram
	// SummaryMap aggregates observations per areal unit.
	SummaryMap
	// SummarySpecies aggregates observations per species.
	SummarySpecies
)

// Kinds lists the report kinds in command order.
var Kinds = []Kind{Extract, Histogram, SummaryMap, SummarySpecies}

var kindNames = map[Kind]string{
	Extract:        "extract",
	Histogram:      "histogram",
	SummaryMap:     "map",
	SummarySpecies: "species",
}

var defaultNames = map[Kind]string{
	Extract:        "Données d'observation",
	Histogram:      "Etat des connaissances",
	SummaryMap:     "Carte synthèse",
	SummarySpecies: "Tableau synthèse espèces",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// DefaultName is the output name used when a request does not set one.
func (k Kind) DefaultName() string {
	return defaultNames[k]
}

// ParseKind converts a name such as "map" or "summary-species" to a Kind.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "summary-")
	key = strings.TrimPrefix(key, "summary_")
	for k, name := range kindNames {
		if key == name {
			return k, nil
		}
	}
	return Unknown, UnknownKindError(s)
}

// AreaType is the areal unit a summary map is grouped by. Its value is
// the type_code of the unit in the reference geography.
type AreaType string

const (
	Grid05  AreaType = "M0.5"
	Grid1   AreaType = "M1"
	Grid5   AreaType = "M5"
	Grid10  AreaType = "M10"
	Commune AreaType = "COM"
	NoArea  AreaType = ""
)

// AreaTypes lists the supported areal units.
var AreaTypes = []AreaType{Grid05, Grid1, Grid5, Grid10, Commune}

var areaAliases = map[string]AreaType{
	"grid-0.5": Grid05,
	"0.5":      Grid05,
	"grid-1":   Grid1,
	"1":        Grid1,
	"grid-5":   Grid5,
	"5":        Grid5,
	"grid-10":  Grid10,
	"10":       Grid10,
	"commune":  Commune,
	"communes": Commune,
}

// ParseAreaType accepts a type code ("M1", "COM") or an alias such as
// "grid-1" or "commune".
func ParseAreaType(s string) (AreaType, error) {
	key := strings.TrimSpace(s)
	for _, at := range AreaTypes {
		if strings.EqualFold(key, string(at)) {
			return at, nil
		}
	}
	if at, ok := areaAliases[strings.ToLower(key)]; ok {
		return at, nil
	}
	return NoArea, UnknownAreaTypeError(s)
}

func (at AreaType) valid() bool {
	for _, v := range AreaTypes {
		if at == v {
			return true
		}
	}
	return false
}
