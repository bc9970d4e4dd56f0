package cmd

import (
	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/lpoaura/lpodata/pkg/taxon"
	"github.com/spf13/cobra"
)

// reportFlags are the flags shared by report commands.
type reportFlags struct {
	area       string
	areaSRID   int
	areaTable  string
	areaGeom   string
	areaFilter string

	taxa map[taxon.Rank]*[]string

	period string
	start  string
	end    string
	where  string

	areaType   string
	name       string
	table      bool
	export     string
	dryRun     bool
	connection string
}

func addReportFlags(cmd *cobra.Command, f *reportFlags) {
	fs := cmd.Flags()

	fs.StringVarP(&f.area, "area", "a", "",
		"file with the study area, one polygon per line as WKT or EWKT")
	fs.IntVar(&f.areaSRID, "area-srid", studyarea.DefaultTargetSRID,
		"SRID of WKT polygons of --area without an SRID prefix")
	fs.StringVar(&f.areaTable, "area-table", "",
		"PostGIS table with the study area polygons (schema.table)")
	fs.StringVar(&f.areaGeom, "area-geom", "geom",
		"geometry column of --area-table")
	fs.StringVar(&f.areaFilter, "area-filter", "",
		"condition selecting rows of --area-table")
	cmd.MarkFlagsMutuallyExclusive("area", "area-table")
	cmd.MarkFlagsOneRequired("area", "area-table")

	f.taxa = make(map[taxon.Rank]*[]string, len(taxon.Ranks))
	for _, r := range taxon.Ranks {
		labels := new([]string)
		f.taxa[r] = labels
		fs.StringArrayVar(labels, r.Flag(), nil,
			"keep observations with this "+r.String()+" (repeatable)")
	}

	fs.StringVarP(&f.period, "period", "p", "none",
		"period of observations: none, 5y, 10y or range")
	fs.StringVar(&f.start, "start", "",
		"first day of a range period (YYYY-MM-DD)")
	fs.StringVar(&f.end, "end", "",
		"last day of a range period (YYYY-MM-DD)")
	fs.StringVarP(&f.where, "where", "w", "",
		"additional SQL condition on the observations (alias obs)")

	fs.StringVarP(&f.name, "name", "n", "",
		"output name of the report")
	fs.BoolVarP(&f.table, "table", "t", false,
		"materialize the report into a table")
	fs.StringVarP(&f.export, "export", "o", "",
		"export the rows to a .sqlite or .csv file")
	fs.BoolVar(&f.dryRun, "dry-run", false,
		"print the SQL statements and exit")
	fs.StringVarP(&f.connection, "connection", "c", "",
		"name of the database connection from config.yaml")
}

// input converts the flags into a report input, the study area set
// aside.
func (f *reportFlags) input() report.Input {
	res := report.Input{
		Period:     f.period,
		Start:      f.start,
		End:        f.end,
		Where:      f.where,
		AreaType:   f.areaType,
		Name:       f.name,
		Table:      f.table,
		Connection: f.connection,
	}
	for _, r := range taxon.Ranks {
		if labels := *f.taxa[r]; len(labels) > 0 {
			if res.Taxa == nil {
				res.Taxa = make(map[string][]string)
			}
			res.Taxa[r.String()] = labels
		}
	}
	return res
}
