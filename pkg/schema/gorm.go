package schema

import (
	"strings"

	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Observation{},
		&Taxref{},
		&TaxrefRank{},
		&Area{},
		&AreaType{},
		&AreaLink{},
		&Nomenclature{},
		&NomenclatureType{},
		&RedList{},
		&Protection{},
		&Vernacular{},
	}
}

// Schemas returns the PostgreSQL schemas the models live in.
func Schemas() []string {
	seen := make(map[string]struct{})
	var res []string
	for _, m := range AllModels() {
		tn, ok := m.(interface{ TableName() string })
		if !ok {
			continue
		}
		schema, _, found := strings.Cut(tn.TableName(), ".")
		if !found {
			continue
		}
		if _, ok := seen[schema]; ok {
			continue
		}
		seen[schema] = struct{}{}
		res = append(res, schema)
	}
	return res
}

// Migrate creates PostGIS, the schemas and the tables of all models.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return err
	}
	for _, s := range Schemas() {
		if err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + s).Error; err != nil {
			return err
		}
	}
	return db.AutoMigrate(AllModels()...)
}
