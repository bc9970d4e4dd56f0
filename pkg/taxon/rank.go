// Package taxon compiles taxonomic selections into SQL predicates on the
// observation source. Each selectable rank is backed by one column and a
// list of known labels kept in a Registry.
package taxon

import (
	"strings"
)

// Rank is a taxonomic level a report can be filtered on. Its value is the
// name of the backing column of the observation source.
type Rank string

const (
	GroupeTaxo Rank = "groupe_taxo"
	Regne      Rank = "regne"
	Phylum     Rank = "phylum"
	Classe     Rank = "classe"
	Ordre      Rank = "ordre"
	Famille    Rank = "famille"
	Group1INPN Rank = "group1_inpn"
	Group2INPN Rank = "group2_inpn"
)

// Ranks lists every rank in the order used for predicate compilation.
var Ranks = []Rank{
	GroupeTaxo, Regne, Phylum, Classe, Ordre, Famille, Group1INPN, Group2INPN,
}

var aliases = map[string]Rank{
	"taxonomic-group": GroupeTaxo,
	"group":           GroupeTaxo,
	"kingdom":         Regne,
	"class":           Classe,
	"order":           Ordre,
	"family":          Famille,
	"inpn-group-1":    Group1INPN,
	"inpn-group-2":    Group2INPN,
}

// ParseRank accepts a column name such as "famille" or an english alias
// such as "family". Hyphens and underscores are interchangeable.
func ParseRank(s string) (Rank, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Ranks {
		if key == string(r) || key == strings.ReplaceAll(string(r), "_", "-") {
			return r, nil
		}
	}
	if r, ok := aliases[strings.ReplaceAll(key, "_", "-")]; ok {
		return r, nil
	}
	return "", UnknownRankError(s)
}

// Column returns the qualified column the rank filters on.
func (r Rank) Column() string {
	return "obs." + string(r)
}

// Flag returns the command line flag name of the rank.
func (r Rank) Flag() string {
	return strings.ReplaceAll(string(r), "_", "-")
}

func (r Rank) String() string {
	return string(r)
}

func (r Rank) valid() bool {
	for _, v := range Ranks {
		if r == v {
			return true
		}
	}
	return false
}
