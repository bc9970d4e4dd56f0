/*
Copyright © 2025 LPO Auvergne-Rhône-Alpes

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/spf13/cobra"
)

// getMapCmd returns the map command.
func getMapCmd() *cobra.Command {
	var f reportFlags

	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "Summarize observations per grid cell or commune",
		Long: `Summarize observations per areal unit intersecting the study area.

Areal units are grid cells of 500 m, 1 km, 5 km, 10 km or communes.
Every intersecting unit is kept, also the ones without a matching
observation. Per unit the report gives the area, the number of records
and its density, distinct species, observers and dates, records of
dead animals and the list of species names.

Examples:
  lpodata map --area zone.wkt --areas M1
  lpodata map -a zone.wkt --areas COM --groupe-taxo Oiseaux --table
  lpodata map --area-table ref_geo.zones --area-filter "id_zone=4" --areas M10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, report.SummaryMap, &f)
		},
	}

	addReportFlags(mapCmd, &f)
	mapCmd.Flags().StringVar(&f.areaType, "areas", string(report.Grid05),
		"areal unit: M0.5, M1, M5, M10 or COM")
	return mapCmd
}
