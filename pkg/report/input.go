package report

import (
	"time"

	"github.com/lpoaura/lpodata/pkg/period"
	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/lpoaura/lpodata/pkg/taxon"
)

// Input is a report request as typed by a user, on the command line or
// in an HTTP body.
type Input struct {
	Area       []studyarea.Polygon `json:"area"`
	Taxa       map[string][]string `json:"taxa,omitempty"`
	Period     string              `json:"period,omitempty"`
	Start      string              `json:"start,omitempty"`
	End        string              `json:"end,omitempty"`
	Where      string              `json:"where,omitempty"`
	AreaType   string              `json:"area_type,omitempty"`
	Name       string              `json:"name,omitempty"`
	Table      bool                `json:"table,omitempty"`
	Connection string              `json:"connection,omitempty"`
}

// Request converts the input into a Request of the given kind. Rank
// names and enumerated values are parsed, labels are left to the taxon
// compiler.
func (in Input) Request(kind Kind, now time.Time) (Request, error) {
	var res Request

	mode, err := period.ParseMode(in.Period)
	if err != nil {
		return res, err
	}

	sel := make(taxon.Selection, len(in.Taxa))
	for k, labels := range in.Taxa {
		r, err := taxon.ParseRank(k)
		if err != nil {
			return res, err
		}
		sel[r] = append(sel[r], labels...)
	}

	at := NoArea
	if in.AreaType != "" {
		if at, err = ParseAreaType(in.AreaType); err != nil {
			return res, err
		}
	}

	res = Request{
		Kind:        kind,
		Area:        studyarea.New(in.Area...),
		Taxa:        sel,
		Period:      period.Filter{Mode: mode, Start: in.Start, End: in.End},
		Extra:       ExtraPredicate(in.Where),
		AreaType:    at,
		Name:        in.Name,
		Materialize: in.Table,
		Connection:  in.Connection,
		Now:         now,
	}
	return res, nil
}
