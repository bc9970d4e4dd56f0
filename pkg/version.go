// Package lpodata builds PostGIS reports of LPO observations: extracts,
// histograms, summary maps and species tables restricted to a study area,
// a taxonomic selection and a period.
package lpodata

var (
	// Version of lpodata, set at build time.
	Version = "v0.1.0"

	// Build is the timestamp of the build, set at build time.
	Build = "n/a"
)
