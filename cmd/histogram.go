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

// getHistogramCmd returns the histogram command.
func getHistogramCmd() *cobra.Command {
	var f reportFlags

	histogramCmd := &cobra.Command{
		Use:   "histogram",
		Short: "Count observations per taxonomic group",
		Long: `Summarize the state of knowledge of a study area per taxonomic group.

For every taxonomic group the report counts records, distinct species,
distinct observers and distinct dates of valid observations within the
study area. Rows are ordered by taxonomic group.

Examples:
  lpodata histogram --area zone.wkt
  lpodata histogram -a zone.wkt --period range --start 2015-01-01 --end 2020-12-31
  lpodata histogram -a zone.wkt --export knowledge.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, report.Histogram, &f)
		},
	}

	addReportFlags(histogramCmd, &f)
	return histogramCmd
}
