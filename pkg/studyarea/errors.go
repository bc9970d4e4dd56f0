package studyarea

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// EmptyError reports a study area without any usable polygon.
func EmptyError(skipped int) error {
	msg := "Study area has no polygon to filter on"
	if skipped > 0 {
		msg = "Study area has no polygon to filter on, " +
			"<em>%d</em> empty geometries were ignored"
	}
	var vars []any
	if skipped > 0 {
		vars = []any{skipped}
	}
	return &gn.Error{
		Code: errcode.StudyAreaEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("empty study area, %d skipped", skipped),
	}
}

// GeometryTypeError reports a feature that is not a polygon.
func GeometryTypeError(idx int, geomType string) error {
	return &gn.Error{
		Code: errcode.StudyAreaGeometryError,
		Msg:  "Study area feature <em>%d</em> is a %s, expected a polygon",
		Vars: []any{idx + 1, geomType},
		Err:  fmt.Errorf("feature %d: geometry type %q", idx, geomType),
	}
}

// SRIDError reports a feature without a valid SRID.
func SRIDError(idx, srid int) error {
	return &gn.Error{
		Code: errcode.StudyAreaGeometryError,
		Msg:  "Study area feature <em>%d</em> has invalid SRID %d",
		Vars: []any{idx + 1, srid},
		Err:  fmt.Errorf("feature %d: invalid srid %d", idx, srid),
	}
}

// MixedSRIDError reports features in different reference systems.
func MixedSRIDError(want, got int) error {
	return &gn.Error{
		Code: errcode.StudyAreaGeometryError,
		Msg:  "Study area mixes spatial references <em>%d</em> and <em>%d</em>",
		Vars: []any{want, got},
		Err:  fmt.Errorf("mixed srid %d and %d", want, got),
	}
}

// EWKTError reports text that is not WKT or EWKT.
func EWKTError(s string) error {
	short := s
	if len(short) > 40 {
		short = short[:40] + "..."
	}
	return &gn.Error{
		Code: errcode.StudyAreaGeometryError,
		Msg:  "Cannot read SRID of geometry <em>%s</em>",
		Vars: []any{short},
		Err:  fmt.Errorf("bad EWKT prefix in %q", short),
	}
}
