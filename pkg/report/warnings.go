package report

import (
	"fmt"
)

// Warnings lists conditions of an assembled report that do not stop it
// but change what it returns.
func Warnings(req Request, q *Query) []string {
	var res []string
	if req.Period.Inverted() {
		res = append(res, fmt.Sprintf(
			"period starts on %s after it ends on %s, no observation can match",
			req.Period.Start, req.Period.End))
	}
	if q != nil && q.Predicate.Skipped > 0 {
		res = append(res, fmt.Sprintf(
			"%d empty polygons of the study area were ignored", q.Predicate.Skipped))
	}
	return res
}
