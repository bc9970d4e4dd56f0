package report_test

import (
	"testing"

	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/stretchr/testify/assert"
)

func TestExtraPredicateCheck(t *testing.T) {
	tests := []struct {
		msg   string
		input report.ExtraPredicate
		ok    bool
	}{
		{"empty", "", true},
		{"simple", "and obs.nombre_total > 10", true},
		{"function call", "and extract(year from obs.\"date\") = 2019", true},
		{"semicolon in literal", "and obs.comment = 'a;b'", true},
		{"comment marker in literal", "and obs.comment = '--'", true},
		{"doubled quote", "and obs.observateur = 'O''Brien'", true},
		{"terminator", "and true; DELETE FROM obs", false},
		{"line comment", "and true --", false},
		{"block comment", "and true /* x */", false},
		{"closing paren", "and true) OR (true", false},
		{"opening paren", "and (true", false},
		{"open quote", "and obs.observateur = 'x", false},
		{"dollar in literal", "and obs.comment = 'US$'", true},
		{
			"escaped quote in E string",
			"and E'\\'' <> ''); DROP TABLE victim; SELECT (E'\\''",
			false,
		},
		{"backslash in literal", `and obs.comment = 'a\b'`, false},
		{
			"dollar quoting",
			"and obs.source <> $$'$$); DROP TABLE victim; SELECT ($$'$$",
			false,
		},
		{"positional parameter", "and obs.id_synthese = $1", false},
	}

	for _, v := range tests {
		err := v.input.Check()
		if v.ok {
			assert.NoError(t, err, v.msg)
		} else {
			assert.Error(t, err, v.msg)
		}
	}
}

func TestExtraPredicateClause(t *testing.T) {
	tests := []struct {
		input report.ExtraPredicate
		res   string
	}{
		{"", ""},
		{"   ", ""},
		{"and", ""},
		{"and obs.mortalite", "and obs.mortalite"},
		{"  OR obs.mortalite ", "OR obs.mortalite"},
		{"and(obs.mortalite)", "and(obs.mortalite)"},
		{"obs.mortalite", "and obs.mortalite"},
		{"android = 1", "and android = 1"},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, v.input.Clause(), string(v.input))
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		res   report.Kind
	}{
		{"extract", report.Extract},
		{"Histogram", report.Histogram},
		{"map", report.SummaryMap},
		{"summary-map", report.SummaryMap},
		{"summary_species", report.SummarySpecies},
	}
	for _, v := range tests {
		res, err := report.ParseKind(v.input)
		assert.NoError(t, err, v.input)
		assert.Equal(t, v.res, res, v.input)
	}
	_, err := report.ParseKind("pie")
	assert.Error(t, err)
}

func TestParseAreaType(t *testing.T) {
	tests := []struct {
		input string
		res   report.AreaType
	}{
		{"M0.5", report.Grid05},
		{"m1", report.Grid1},
		{"grid-5", report.Grid5},
		{"10", report.Grid10},
		{"commune", report.Commune},
		{"COM", report.Commune},
	}
	for _, v := range tests {
		res, err := report.ParseAreaType(v.input)
		assert.NoError(t, err, v.input)
		assert.Equal(t, v.res, res, v.input)
	}
	_, err := report.ParseAreaType("M2")
	assert.Error(t, err)
}
