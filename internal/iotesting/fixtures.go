package iotesting

import (
	"fmt"
	"testing"
	"time"

	"github.com/lpoaura/lpodata/pkg/db"
	"github.com/lpoaura/lpodata/pkg/schema"
	"gorm.io/gorm"
)

// Square is the study area of fixture based tests, a 1 km square in
// Lambert-93.
const Square = "POLYGON((800000 6500000, 801000 6500000, 801000 6501000, " +
	"800000 6501000, 800000 6500000))"

// CellCode is the code of the 1 km grid cell that matches Square.
const CellCode = "E080N650"

// Expected aggregates of the valid bird observations inside Square.
const (
	BirdRecords   = 6
	BirdSpecies   = 3
	BirdObservers = 3
	BirdDates     = 4
)

type fixtureObs struct {
	id       int
	group    string
	cdNom    int
	observer string
	date     string
	x, y     int
	valid    bool
	dead     bool
	count    int
	nidif    *int
}

func code(i int) *int { return &i }

var observations = []fixtureObs{
	{1, "Oiseaux", 1001, "Alice", "2019-05-01", 800100, 6500100, true, false, 2, code(2)},
	{2, "Oiseaux", 1001, "Bob", "2019-05-01", 800200, 6500200, true, false, 3, code(5)},
	{3, "Oiseaux", 1002, "Alice", "2019-06-10", 800300, 6500300, true, false, 1, nil},
	{4, "Oiseaux", 1002, "Chloé", "2018-03-03", 800400, 6500400, true, false, 4, nil},
	{5, "Oiseaux", 1003, "Alice", "2019-06-10", 800500, 6500500, true, true, 1, nil},
	{6, "Oiseaux", 1001, "Bob", "2017-07-07", 800600, 6500600, true, false, 5, nil},
	// invalid record inside the square
	{7, "Oiseaux", 1004, "Denis", "2016-01-01", 800700, 6500700, false, false, 1, nil},
	// valid record outside the square
	{8, "Oiseaux", 1005, "Emma", "2015-01-01", 805000, 6505000, true, false, 1, nil},
	{9, "Mammifères", 2001, "Alice", "2019-08-08", 800800, 6500800, true, false, 1, nil},
	{10, "Mammifères", 2001, "Franck", "2019-08-08", 800900, 6500900, true, false, 2, nil},
}

var names = map[int][2]string{
	1001: {"Mésange charbonnière", "Parus major"},
	1002: {"Rougegorge familier", "Erithacus rubecula"},
	1003: {"Merle noir", "Turdus merula"},
	1004: {"Pic vert", "Picus viridis"},
	1005: {"Buse variable", "Buteo buteo"},
	2001: {"Hérisson d'Europe", "Erinaceus europaeus"},
}

// LoadFixtures creates the observation source relations as tables in the
// test database and fills them with a small known dataset.
func LoadFixtures(t *testing.T, op db.Operator) {
	t.Helper()

	gdb, err := op.GORM()
	if err != nil {
		t.Fatalf("Cannot open gorm: %v", err)
	}
	if err = schema.Migrate(gdb); err != nil {
		t.Fatalf("Cannot migrate fixture schema: %v", err)
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		for _, m := range schema.AllModels() {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Delete(m).Error
			if err != nil {
				return err
			}
		}
		for _, rows := range fixtureRows() {
			if err := tx.Create(rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Cannot load fixtures: %v", err)
	}
}

func fixtureRows() []any {
	var obs []schema.Observation
	var links []schema.AreaLink
	for _, o := range observations {
		date, _ := time.Parse(time.DateOnly, o.date)
		obs = append(obs, schema.Observation{
			IDSynthese:    o.id,
			Geom:          fmt.Sprintf("SRID=2154;POINT(%d %d)", o.x, o.y),
			IsValid:       o.valid,
			IsPresent:     true,
			GroupeTaxo:    o.group,
			Regne:         "Animalia",
			Phylum:        "Chordata",
			Classe:        classe(o.group),
			TaxrefCdNom:   o.cdNom,
			SourceIDSp:    o.cdNom,
			NomVern:       names[o.cdNom][0],
			Observateur:   o.observer,
			Date:          date,
			DateAn:        date.Year(),
			NombreTotal:   o.count,
			Mortalite:     o.dead,
			OisoCodeNidif: o.nidif,
			Source:        "vn",
		})
		if o.x < 801000 && o.y < 6501000 {
			links = append(links,
				schema.AreaLink{IDSynthese: o.id, IDArea: 1},
				schema.AreaLink{IDSynthese: o.id, IDArea: 2},
			)
		}
	}

	var taxa []schema.Taxref
	var vns []schema.Vernacular
	for i, cd := range []int{1001, 1002, 1003, 1004, 1005, 2001} {
		taxa = append(taxa, schema.Taxref{
			CdNom: cd, CdRef: cd, IDRang: "ES",
			LbNom: names[cd][1], NomVern: names[cd][0],
		})
		vns = append(vns, schema.Vernacular{
			ID: i + 1, CdRef: cd, VnNomFr: names[cd][0], VnNomSci: names[cd][1],
		})
	}

	return []any{
		&obs,
		&taxa,
		&vns,
		&[]schema.TaxrefRank{{IDRang: "ES", NomRang: "Espèce"}},
		&[]schema.AreaType{
			{IDType: 1, TypeCode: "M1", TypeName: "Mailles 1*1"},
			{IDType: 2, TypeCode: "COM", TypeName: "Communes"},
		},
		&[]schema.Area{
			{IDArea: 1, IDType: 1, AreaName: CellCode, AreaCode: CellCode,
				Geom: "SRID=2154;MULTIPOLYGON(((800000 6500000, 801000 6500000, " +
					"801000 6501000, 800000 6501000, 800000 6500000)))"},
			{IDArea: 2, IDType: 2, AreaName: "Lyon", AreaCode: "69123",
				Geom: "SRID=2154;MULTIPOLYGON(((799000 6499000, 802000 6499000, " +
					"802000 6502000, 799000 6502000, 799000 6499000)))"},
		},
		&links,
		&[]schema.NomenclatureType{{IDType: 1, Mnemonique: "VN_ATLAS_CODE"}},
		&[]schema.Nomenclature{
			{IDNomenclature: 1, IDType: 1, CdNomenclature: "2",
				LabelFr: "Nicheur possible", Hierarchy: "002"},
			{IDNomenclature: 2, IDType: 1, CdNomenclature: "5",
				LabelFr: "Nicheur probable", Hierarchy: "005"},
		},
		&[]schema.RedList{{CdRef: 1001, LrFrance: "LC", Lrra: "LC", Lrauv: "LC"}},
		&[]schema.Protection{{CdRef: 1001, ProtectionNat: "Art. 3"}},
	}
}

func classe(group string) string {
	if group == "Oiseaux" {
		return "Aves"
	}
	return "Mammalia"
}
