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

// getSpeciesCmd returns the species command.
func getSpeciesCmd() *cobra.Command {
	var f reportFlags

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "Summarize observations per species",
		Long: `Summarize observations of the study area per species.

Synonyms are merged on the TAXREF reference name. For every species the
report gives the number of records, observers and dates, dead animals,
the largest count, the first and last years, the communes and data
sources, the highest breeding status, red list and protection statuses,
and the share of all selected records.

Examples:
  lpodata species --area zone.wkt --groupe-taxo Oiseaux
  lpodata species -a zone.wkt --period 10y --export species.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, report.SummarySpecies, &f)
		},
	}

	addReportFlags(speciesCmd, &f)
	return speciesCmd
}
