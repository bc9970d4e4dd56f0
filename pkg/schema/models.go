// Package schema describes, as gorm models, the part of a GeoNature
// database that reports read. lpodata never owns these relations: the
// models serve model based queries and the creation of test databases.
package schema

import (
	"time"
)

// Observation is a row of the enriched observations view.
type Observation struct {
	IDSynthese    int       `gorm:"column:id_synthese;primaryKey;autoIncrement:false"`
	Geom          string    `gorm:"column:geom;type:geometry(Geometry,2154)"`
	IsValid       bool      `gorm:"column:is_valid"`
	IsPresent     bool      `gorm:"column:is_present"`
	GroupeTaxo    string    `gorm:"column:groupe_taxo"`
	Regne         string    `gorm:"column:regne"`
	Phylum        string    `gorm:"column:phylum"`
	Classe        string    `gorm:"column:classe"`
	Ordre         string    `gorm:"column:ordre"`
	Famille       string    `gorm:"column:famille"`
	Group1INPN    string    `gorm:"column:group1_inpn"`
	Group2INPN    string    `gorm:"column:group2_inpn"`
	TaxrefCdNom   int       `gorm:"column:taxref_cdnom;index"`
	SourceIDSp    int       `gorm:"column:source_id_sp"`
	NomVern       string    `gorm:"column:nom_vern"`
	Observateur   string    `gorm:"column:observateur"`
	Date          time.Time `gorm:"column:date;type:date"`
	DateAn        int       `gorm:"column:date_an"`
	NombreTotal   int       `gorm:"column:nombre_total"`
	Mortalite     bool      `gorm:"column:mortalite"`
	OisoCodeNidif *int      `gorm:"column:oiso_code_nidif"`
	Source        string    `gorm:"column:source"`
}

func (Observation) TableName() string { return "src_lpodatas.v_c_observations" }

// Taxref is a TAXREF name. CdRef points to the accepted name.
type Taxref struct {
	CdNom   int    `gorm:"column:cd_nom;primaryKey;autoIncrement:false"`
	CdRef   int    `gorm:"column:cd_ref;index"`
	IDRang  string `gorm:"column:id_rang"`
	LbNom   string `gorm:"column:lb_nom"`
	NomVern string `gorm:"column:nom_vern"`
}

func (Taxref) TableName() string { return "taxonomie.taxref" }

// TaxrefRank names a TAXREF rank code, such as ES for species.
type TaxrefRank struct {
	IDRang  string `gorm:"column:id_rang;primaryKey"`
	NomRang string `gorm:"column:nom_rang"`
}

func (TaxrefRank) TableName() string { return "taxonomie.bib_taxref_rangs" }

// Area is an areal unit: a grid cell or a commune.
type Area struct {
	IDArea   int    `gorm:"column:id_area;primaryKey"`
	IDType   int    `gorm:"column:id_type;index"`
	AreaName string `gorm:"column:area_name"`
	AreaCode string `gorm:"column:area_code"`
	Geom     string `gorm:"column:geom;type:geometry(MultiPolygon,2154)"`
}

func (Area) TableName() string { return "ref_geo.l_areas" }

// AreaType is a kind of areal unit, identified by its TypeCode (M1, COM).
type AreaType struct {
	IDType   int    `gorm:"column:id_type;primaryKey"`
	TypeCode string `gorm:"column:type_code;uniqueIndex"`
	TypeName string `gorm:"column:type_name"`
}

func (AreaType) TableName() string { return "ref_geo.bib_areas_types" }

// AreaLink relates an observation to the areal units it falls in.
type AreaLink struct {
	IDSynthese int `gorm:"column:id_synthese;primaryKey;autoIncrement:false"`
	IDArea     int `gorm:"column:id_area;primaryKey;autoIncrement:false"`
}

func (AreaLink) TableName() string { return "gn_synthese.cor_area_synthese" }

// Nomenclature is a coded value, for example a breeding atlas code with
// its place in the breeding evidence hierarchy.
type Nomenclature struct {
	IDNomenclature int    `gorm:"column:id_nomenclature;primaryKey"`
	IDType         int    `gorm:"column:id_type;index"`
	CdNomenclature string `gorm:"column:cd_nomenclature"`
	LabelFr        string `gorm:"column:label_fr"`
	Hierarchy      string `gorm:"column:hierarchy"`
}

func (Nomenclature) TableName() string { return "ref_nomenclatures.t_nomenclatures" }

// NomenclatureType groups nomenclatures, VN_ATLAS_CODE for breeding codes.
type NomenclatureType struct {
	IDType     int    `gorm:"column:id_type;primaryKey"`
	Mnemonique string `gorm:"column:mnemonique;uniqueIndex"`
}

func (NomenclatureType) TableName() string {
	return "ref_nomenclatures.bib_nomenclatures_types"
}

// RedList keeps red list categories of an accepted taxon.
type RedList struct {
	CdRef    int    `gorm:"column:cd_ref;primaryKey;autoIncrement:false"`
	LrFrance string `gorm:"column:lr_france"`
	Lrra     string `gorm:"column:lrra"`
	Lrauv    string `gorm:"column:lrauv"`
}

func (RedList) TableName() string { return "taxonomie.mv_c_statut_lr" }

// Protection keeps legal protection statuses of an accepted taxon.
type Protection struct {
	CdRef         int    `gorm:"column:cd_ref;primaryKey;autoIncrement:false"`
	DirHab        string `gorm:"column:dir_hab"`
	DirOis        string `gorm:"column:dir_ois"`
	ProtectionNat string `gorm:"column:protection_nat"`
	ConvBerne     string `gorm:"column:conv_berne"`
	ConvBonn      string `gorm:"column:conv_bonn"`
}

func (Protection) TableName() string { return "taxonomie.mv_c_statut_protection" }

// Vernacular gives the display names of an accepted taxon.
type Vernacular struct {
	ID       int    `gorm:"column:id;primaryKey"`
	CdRef    int    `gorm:"column:cd_ref;index"`
	VnNomFr  string `gorm:"column:vn_nom_fr"`
	VnNomSci string `gorm:"column:vn_nom_sci"`
}

func (Vernacular) TableName() string { return "taxonomie.mv_c_cor_vn_taxref" }
