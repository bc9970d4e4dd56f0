package report

import "strings"

// Predicate is the compiled filter shared by every report shape.
type Predicate struct {
	// Area merges the study area polygons, ST_union(ARRAY[...]).
	Area string

	// Taxa is the taxonomic fragment, empty when no rank is selected.
	Taxa string

	// Period is the temporal fragment, empty without restriction.
	Period string

	// Extra is the checked extra predicate with its leading connective.
	Extra string

	// Polygons is the number of encoded polygons.
	Polygons int

	// Skipped is the number of polygons without geometry.
	Skipped int
}

// Apply appends the taxonomic, temporal and extra fragments to base.
func (p Predicate) Apply(base string) string {
	var sb strings.Builder
	sb.WriteString(base)
	for _, f := range []string{p.Taxa, p.Period} {
		if f == "" {
			continue
		}
		sb.WriteString(" and ")
		sb.WriteString(f)
	}
	if p.Extra != "" {
		sb.WriteString(" ")
		sb.WriteString(p.Extra)
	}
	return sb.String()
}
