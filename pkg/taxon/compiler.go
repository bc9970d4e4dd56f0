package taxon

import (
	"slices"
	"strings"

	"github.com/lib/pq"
)

// Selection is the raw user choice: labels per rank. Missing or empty
// ranks do not filter.
type Selection map[Rank][]string

// FilterSet holds validated, deduplicated labels per rank.
type FilterSet map[Rank][]string

// Predicate renders the filter set as a conjunction of IN clauses, one per
// non-empty rank, in the order of Ranks. The result is empty when nothing
// is selected.
func (fs FilterSet) Predicate() string {
	clauses := make([]string, 0, len(Ranks))
	for _, r := range Ranks {
		labels := fs[r]
		if len(labels) == 0 {
			continue
		}
		quoted := make([]string, len(labels))
		for i, l := range labels {
			quoted[i] = strings.TrimSpace(pq.QuoteLiteral(l))
		}
		clauses = append(clauses,
			r.Column()+" IN ("+strings.Join(quoted, ",")+")")
	}
	return strings.Join(clauses, " and ")
}

// IsEmpty is true when no rank restricts the observations.
func (fs FilterSet) IsEmpty() bool {
	for _, ls := range fs {
		if len(ls) > 0 {
			return false
		}
	}
	return true
}

// Compiler validates selections against a Registry and produces taxonomic
// predicates.
type Compiler struct {
	reg *Registry
}

// NewCompiler creates a Compiler bound to reg. A nil registry accepts all
// labels.
func NewCompiler(reg *Registry) *Compiler {
	if reg == nil {
		reg = NewRegistry(nil)
	}
	return &Compiler{reg: reg}
}

// Registry returns the registry the compiler validates against.
func (c *Compiler) Registry() *Registry {
	return c.reg
}

// FilterSet validates sel. Labels keep the order of their first
// occurrence, duplicates are removed.
func (c *Compiler) FilterSet(sel Selection) (FilterSet, error) {
	res := make(FilterSet, len(sel))
	for r, labels := range sel {
		if !r.valid() {
			return nil, UnknownRankError(string(r))
		}
		ls, err := c.reg.Resolve(r, labels)
		if err != nil {
			return nil, err
		}
		uniq := make([]string, 0, len(ls))
		for _, l := range ls {
			if !slices.Contains(uniq, l) {
				uniq = append(uniq, l)
			}
		}
		if len(uniq) > 0 {
			res[r] = uniq
		}
	}
	return res, nil
}

// Compile validates sel and returns its predicate.
func (c *Compiler) Compile(sel Selection) (string, error) {
	fs, err := c.FilterSet(sel)
	if err != nil {
		return "", err
	}
	return fs.Predicate(), nil
}
