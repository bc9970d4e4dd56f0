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

// getExtractCmd returns the extract command.
func getExtractCmd() *cobra.Command {
	var f reportFlags

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract observations inside a study area",
		Long: `Extract every valid observation located within the study area.

This command:
  1. Reads the study area from a WKT file or a PostGIS table
  2. Compiles taxonomic, period and extra filters
  3. Selects the matching observations with their geometry
  4. Creates a table when --table is set, otherwise reads the query
  5. Exports the rows when --export is set

The layer key is id_synthese.

Examples:
  lpodata extract --area zone.wkt --groupe-taxo Oiseaux
  lpodata extract -a zone.wkt --period 5y --table --name "Extraction Oiseaux"
  lpodata extract -a zone.wkt --famille Paridae --export paridae.sqlite
  lpodata extract -a zone.wkt --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, report.Extract, &f)
		},
	}

	addReportFlags(extractCmd, &f)
	return extractCmd
}
