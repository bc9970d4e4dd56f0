package period

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// ModeError reports an unknown period mode.
func ModeError(mode string) error {
	return &gn.Error{
		Code: errcode.FilterPeriodModeError,
		Msg:  "Unknown period <em>%s</em>, use none, 5y, 10y or range",
		Vars: []any{mode},
		Err:  fmt.Errorf("unknown period mode %q", mode),
	}
}

// BoundMissingError reports a range period without a start or end.
func BoundMissingError(bound string) error {
	return &gn.Error{
		Code: errcode.FilterPeriodBoundMissingError,
		Msg:  "Period range needs a <em>%s</em> date",
		Vars: []any{bound},
		Err:  fmt.Errorf("range without %s date", bound),
	}
}

// DateError reports a date that cannot be parsed.
func DateError(s string) error {
	return &gn.Error{
		Code: errcode.FilterPeriodDateError,
		Msg:  "Cannot read date <em>%s</em>, expected YYYY-MM-DD",
		Vars: []any{s},
		Err:  fmt.Errorf("cannot parse date %q", s),
	}
}
