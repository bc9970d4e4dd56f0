package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/internal/iotesting"
	"github.com/lpoaura/lpodata/pkg/errcode"
	"github.com/lpoaura/lpodata/pkg/taxon"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCmds(t *testing.T) {
	tests := []struct {
		use  string
		cmd  *cobra.Command
		text string
	}{
		{"extract", getExtractCmd(), "id_synthese"},
		{"histogram", getHistogramCmd(), "taxonomic group"},
		{"map", getMapCmd(), "areal unit"},
		{"species", getSpeciesCmd(), "breeding status"},
	}

	for _, v := range tests {
		t.Run(v.use, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(v.use, v.cmd.Use)
			assert.NotEmpty(v.cmd.Short)
			assert.Contains(v.cmd.Long, v.text)
			assert.Contains(v.cmd.Long, "Examples:")
			assert.NotNil(v.cmd.RunE)

			for _, name := range []string{
				"area", "area-srid", "area-table", "area-geom", "area-filter",
				"period", "start", "end", "where",
				"name", "table", "export", "dry-run", "connection",
			} {
				assert.NotNil(v.cmd.Flags().Lookup(name), name)
			}
			for _, r := range taxon.Ranks {
				assert.NotNil(v.cmd.Flags().Lookup(r.Flag()), r.Flag())
			}

			areas := v.cmd.Flags().Lookup("areas")
			if v.use == "map" {
				require.NotNil(t, areas)
				assert.Equal("M0.5", areas.DefValue)
			} else {
				assert.Nil(areas)
			}
		})
	}
}

func TestReportFlagsInput(t *testing.T) {
	assert := assert.New(t)
	cmd := &cobra.Command{Use: "map"}
	var f reportFlags
	addReportFlags(cmd, &f)
	cmd.Flags().StringVar(&f.areaType, "areas", "M0.5", "")

	err := cmd.ParseFlags([]string{
		"--area", "zone.wkt",
		"--groupe-taxo", "Oiseaux",
		"--groupe-taxo", "Papillons de jour, Zygènes",
		"--famille", "Paridae",
		"--period", "range",
		"--start", "2015-01-01",
		"--end", "2020-12-31",
		"--where", "obs.nombre_total > 1",
		"--areas", "COM",
		"-n", "Étude Oiseaux 2020",
		"-t",
		"-c", "prod",
	})
	require.NoError(t, err)

	in := f.input()
	assert.Equal(map[string][]string{
		"groupe_taxo": {"Oiseaux", "Papillons de jour, Zygènes"},
		"famille":     {"Paridae"},
	}, in.Taxa)
	assert.Equal("range", in.Period)
	assert.Equal("2015-01-01", in.Start)
	assert.Equal("2020-12-31", in.End)
	assert.Equal("obs.nombre_total > 1", in.Where)
	assert.Equal("COM", in.AreaType)
	assert.Equal("Étude Oiseaux 2020", in.Name)
	assert.True(in.Table)
	assert.Equal("prod", in.Connection)
	assert.Equal("zone.wkt", f.area)
}

func TestReportFlagsNoTaxa(t *testing.T) {
	cmd := &cobra.Command{Use: "histogram"}
	var f reportFlags
	addReportFlags(cmd, &f)
	require.NoError(t, cmd.ParseFlags([]string{"--area", "zone.wkt"}))

	in := f.input()
	assert.Nil(t, in.Taxa)
	assert.Equal(t, "none", in.Period)
	assert.False(t, in.Table)
}

func TestAreaFlagError(t *testing.T) {
	err := AreaFlagError()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CommandFlagError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "--area-table")
}

func TestReportMissingArea(t *testing.T) {
	iotesting.SetupTempHome(t)
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"histogram", "--dry-run"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "area")
}

func TestReportDryRun(t *testing.T) {
	home := iotesting.SetupTempHome(t)
	area := filepath.Join(home, "zone.wkt")
	wkt := "# study area\n" +
		"POLYGON((800000 6500000, 801000 6500000, 801000 6501000, " +
		"800000 6501000, 800000 6500000))\n"
	require.NoError(t, os.WriteFile(area, []byte(wkt), 0644))

	tests := []struct {
		msg      string
		args     []string
		contains []string
		order    []string
	}{
		{
			msg:  "virtual histogram",
			args: []string{"histogram", "--area", area, "--groupe-taxo", "Oiseaux"},
			contains: []string{
				"-- Etat des connaissances ",
				"obs.groupe_taxo IN ('Oiseaux')",
				"ST_GeomFromText('POLYGON((800000 6500000",
				"key='id'",
			},
		},
		{
			msg: "materialized histogram",
			args: []string{
				"histogram", "--area", area, "--groupe-taxo", "Oiseaux",
				"--table", "--name", "Étude Oiseaux 2020",
			},
			contains: []string{
				"-- Étude Oiseaux 2020 ",
				`table="public"."etude_oiseaux_2020"`,
			},
			order: []string{
				`DROP TABLE IF EXISTS "public"."etude_oiseaux_2020";`,
				`CREATE TABLE "public"."etude_oiseaux_2020" AS (`,
				`ALTER TABLE "public"."etude_oiseaux_2020" ADD PRIMARY KEY ("id");`,
			},
		},
		{
			msg:  "communes map",
			args: []string{"map", "--area", area, "--areas", "COM"},
			contains: []string{
				"'COM'",
				"ST_intersects",
				"(geom)",
			},
		},
		{
			msg: "extract with period",
			args: []string{
				"extract", "--area", area,
				"--period", "range", "--start", "2018-01-01", "--end", "2019-12-31",
			},
			contains: []string{
				`obs."date" >= '2018-01-01'`,
				`obs."date" <= '2019-12-31'`,
				"key='id_synthese'",
			},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cmd := getRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs(append(v.args, "--dry-run"))

			require.NoError(t, cmd.Execute())
			out := buf.String()
			for _, s := range v.contains {
				assert.Contains(t, out, s)
			}
			last := -1
			for _, s := range v.order {
				idx := strings.Index(out, s)
				require.GreaterOrEqual(t, idx, 0, s)
				assert.Greater(t, idx, last, s)
				last = idx
			}
		})
	}
}

func TestReportDryRunUnknownLabel(t *testing.T) {
	home := iotesting.SetupTempHome(t)
	area := filepath.Join(home, "zone.wkt")
	wkt := "POLYGON((0 0, 1 0, 1 1, 0 1, 0 0))\n"
	require.NoError(t, os.WriteFile(area, []byte(wkt), 0644))

	cmd := getRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"histogram", "--area", area, "--groupe-taxo", "Dragons", "--dry-run",
	})

	err := cmd.Execute()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.FilterUnknownLabelError, gnErr.Code)
}
