package cmd

import (
	"bytes"
	"testing"

	"github.com/lpoaura/lpodata/internal/iotesting"
	"github.com/lpoaura/lpodata/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTaxaCmd(t *testing.T) {
	cmd := getTaxaCmd()
	assert.Equal(t, "taxa", cmd.Use)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
		assert.NotNil(t, c.RunE, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "refresh"}, names)

	refresh := getTaxaRefreshCmd()
	assert.NotNil(t, refresh.Flags().Lookup("connection"))
	assert.Contains(t, refresh.Long, "concurrently")
}

func TestWriteRegistry(t *testing.T) {
	reg := taxon.NewRegistry(map[taxon.Rank][]string{
		taxon.GroupeTaxo: {"Mammifères", "Oiseaux"},
	})

	var buf bytes.Buffer
	err := writeRegistry(&buf, reg, []taxon.Rank{taxon.GroupeTaxo, taxon.Famille})
	require.NoError(t, err)

	exp := "groupe_taxo (--groupe-taxo): 2 labels\n" +
		"    0  Mammifères\n" +
		"    1  Oiseaux\n" +
		"famille (--famille): 0 labels\n"
	assert.Equal(t, exp, buf.String())
}

func TestTaxaList(t *testing.T) {
	iotesting.SetupTempHome(t)

	tests := []struct {
		msg      string
		args     []string
		contains []string
		missing  []string
		err      bool
	}{
		{
			msg:      "all ranks",
			args:     []string{"taxa", "list"},
			contains: []string{"groupe_taxo (--groupe-taxo)", "Oiseaux", "regne (--regne)"},
		},
		{
			msg:      "one rank by alias",
			args:     []string{"taxa", "list", "kingdom"},
			contains: []string{"regne (--regne): 3 labels", "Plantae"},
			missing:  []string{"Oiseaux"},
		},
		{
			msg:  "unknown rank",
			args: []string{"taxa", "list", "species"},
			err:  true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cmd := getRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs(v.args)

			err := cmd.Execute()
			if v.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range v.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range v.missing {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
