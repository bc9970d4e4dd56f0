package schema_test

import (
	"strings"
	"testing"

	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/lpoaura/lpodata/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestSchemas(t *testing.T) {
	assert.Equal(t,
		[]string{"src_lpodatas", "taxonomie", "ref_geo", "gn_synthese", "ref_nomenclatures"},
		schema.Schemas())
}

// TestModelsMatchSources keeps models and default report relations in
// step.
func TestModelsMatchSources(t *testing.T) {
	src := report.DefaultSources()
	tables := make(map[string]bool)
	for _, m := range schema.AllModels() {
		tn := m.(interface{ TableName() string })
		tables[tn.TableName()] = true
	}

	for _, rel := range []string{
		src.Observations, src.Taxref, src.TaxrefRanks, src.Areas,
		src.AreaTypes, src.AreaLinks, src.Nomenclatures,
		src.NomenclatureTypes, src.RedLists, src.Protections, src.Vernaculars,
	} {
		assert.True(t, tables[rel], rel)
		assert.Equal(t, 1, strings.Count(rel, "."), rel)
	}
}
