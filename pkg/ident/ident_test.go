package ident_test

import (
	"strings"
	"testing"

	"github.com/lpoaura/lpodata/pkg/ident"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg, input, res string
	}{
		{"accents and spaces", "Étude Oiseaux 2020", "etude_oiseaux_2020"},
		{"punctuation", "Données d'observation", "donnees_d_observation"},
		{"display name", "Synthèse 20200416_101010", "synthese_20200416_101010"},
		{"ligature", "Cœur de ville", "coeur_de_ville"},
		{"leading digit", "2020 oiseaux", "t_2020_oiseaux"},
		{"trims separators", "  --Rapport--  ", "rapport"},
		{"column alias", "Densité (Nb de données/km2)", "densite_nb_de_donnees_km2"},
		{"no letters", "!!!", ""},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, ident.Normalize(v.input), v.msg)
	}
}

func TestNormalizeMaxLen(t *testing.T) {
	long := strings.Repeat("abcdefghij ", 10)
	res := ident.Normalize(long)
	assert.LessOrEqual(t, len(res), ident.MaxLen)
	assert.False(t, strings.HasSuffix(res, "_"))
}

func TestUnique(t *testing.T) {
	res := ident.Unique([]string{"Nb", "nb", "NB ", "?", "Nom"})
	assert.Equal(t, []string{"nb", "nb_2", "nb_3", "field_4", "nom"}, res)
}
