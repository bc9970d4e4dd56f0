package report

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// UnknownKindError reports an unsupported report kind.
func UnknownKindError(kind string) error {
	return &gn.Error{
		Code: errcode.ReportUnknownKindError,
		Msg:  "Unknown report <em>%s</em>, use extract, histogram, map or species",
		Vars: []any{kind},
		Err:  fmt.Errorf("unknown report kind %q", kind),
	}
}

// UnknownAreaTypeError reports an unsupported areal unit.
func UnknownAreaTypeError(at string) error {
	return &gn.Error{
		Code: errcode.ReportUnknownAreaTypeError,
		Msg:  "Unknown areal unit <em>%s</em>, use M0.5, M1, M5, M10 or COM",
		Vars: []any{at},
		Err:  fmt.Errorf("unknown area type %q", at),
	}
}

// ExtraPredicateError reports extra SQL refused by ExtraPredicate.Check.
func ExtraPredicateError(text, reason string) error {
	return &gn.Error{
		Code: errcode.FilterExtraPredicateError,
		Msg:  "Extra predicate is rejected: %s in <em>%s</em>",
		Vars: []any{reason, text},
		Err:  fmt.Errorf("unsafe extra predicate: %s", reason),
	}
}

// SourceNameError reports a source relation that is not a plain name.
func SourceNameError(field, val string) error {
	return &gn.Error{
		Code: errcode.ReportSourceError,
		Msg:  "Source relation %s has an invalid name <em>%s</em>",
		Vars: []any{field, val},
		Err:  fmt.Errorf("invalid %s relation %q", field, val),
	}
}

// TemplateError reports a report statement that failed to render.
func TemplateError(name string, err error) error {
	return &gn.Error{
		Code: errcode.ReportTemplateError,
		Msg:  "Cannot render query <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("render %s: %w", name, err),
	}
}
