package layer

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// InvalidError reports a layer that cannot be used.
func InvalidError(name, reason string) error {
	return &gn.Error{
		Code: errcode.LayerInvalidError,
		Msg:  "Layer <em>%s</em> is not valid: %s",
		Vars: []any{name, reason},
		Err:  fmt.Errorf("invalid layer %q: %s", name, reason),
	}
}

// EmptyError reports a layer without features.
func EmptyError(name string) error {
	msg := `Layer <em>%s</em> has no features

Possible causes:
  - the study area does not overlap any observation
  - the taxon or period filters exclude every observation

How to fix:
  - check the study area and the filters, run again with --dry-run
    to see the statement`
	return &gn.Error{
		Code: errcode.LayerEmptyError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("empty layer %q", name),
	}
}
