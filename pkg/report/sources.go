package report

import (
	"regexp"

	"github.com/lpoaura/lpodata/pkg/config"
)

// Sources names the relations reports read from.
type Sources struct {
	Observations      string
	Taxref            string
	TaxrefRanks       string
	Areas             string
	AreaTypes         string
	AreaLinks         string
	Nomenclatures     string
	NomenclatureTypes string
	RedLists          string
	Protections       string
	Vernaculars       string
}

// DefaultSources returns the relations of a GeoNature database with the
// LPO observation views.
func DefaultSources() Sources {
	return Sources{
		Observations:      "src_lpodatas.v_c_observations",
		Taxref:            "taxonomie.taxref",
		TaxrefRanks:       "taxonomie.bib_taxref_rangs",
		Areas:             "ref_geo.l_areas",
		AreaTypes:         "ref_geo.bib_areas_types",
		AreaLinks:         "gn_synthese.cor_area_synthese",
		Nomenclatures:     "ref_nomenclatures.t_nomenclatures",
		NomenclatureTypes: "ref_nomenclatures.bib_nomenclatures_types",
		RedLists:          "taxonomie.mv_c_statut_lr",
		Protections:       "taxonomie.mv_c_statut_protection",
		Vernaculars:       "taxonomie.mv_c_cor_vn_taxref",
	}
}

// NewSources returns the default relations with the observations view
// and TAXREF table taken from the configuration.
func NewSources(cfg config.ReportConfig) Sources {
	res := DefaultSources()
	if cfg.ObservationsView != "" {
		res.Observations = cfg.ObservationsView
	}
	if cfg.TaxrefTable != "" {
		res.Taxref = cfg.TaxrefTable
	}
	return res
}

var relationRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// IsRelation reports whether s is a plain, optionally schema-qualified,
// identifier.
func IsRelation(s string) bool {
	return relationRe.MatchString(s)
}

// Validate makes sure every relation is a plain, optionally
// schema-qualified, identifier.
func (s Sources) Validate() error {
	fields := []struct{ name, val string }{
		{"observations", s.Observations},
		{"taxref", s.Taxref},
		{"taxref_ranks", s.TaxrefRanks},
		{"areas", s.Areas},
		{"area_types", s.AreaTypes},
		{"area_links", s.AreaLinks},
		{"nomenclatures", s.Nomenclatures},
		{"nomenclature_types", s.NomenclatureTypes},
		{"red_lists", s.RedLists},
		{"protections", s.Protections},
		{"vernaculars", s.Vernaculars},
	}
	for _, f := range fields {
		if !IsRelation(f.val) {
			return SourceNameError(f.name, f.val)
		}
	}
	return nil
}
