package taxon

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// UnknownRankError reports a rank name that is not recognised.
func UnknownRankError(name string) error {
	known := make([]string, len(Ranks))
	for i, r := range Ranks {
		known[i] = string(r)
	}
	return &gn.Error{
		Code: errcode.FilterUnknownRankError,
		Msg:  "Unknown taxonomic rank <em>%s</em>, expected one of: %s",
		Vars: []any{name, strings.Join(known, ", ")},
		Err:  fmt.Errorf("unknown rank %q", name),
	}
}

// UnknownLabelError reports a label missing from the registry.
func UnknownLabelError(r Rank, label string) error {
	return &gn.Error{
		Code: errcode.FilterUnknownLabelError,
		Msg:  "Label <em>%s</em> is not a known %s, run 'lpodata taxa list %s'",
		Vars: []any{label, r, r.Flag()},
		Err:  fmt.Errorf("unknown %s label %q", r, label),
	}
}

// IndexOutOfRangeError reports a label index beyond the options.
func IndexOutOfRangeError(r Rank, idx, size int) error {
	return &gn.Error{
		Code: errcode.FilterIndexOutOfRangeError,
		Msg:  "Index <em>%d</em> is out of range for %s (%d options)",
		Vars: []any{idx, r, size},
		Err:  fmt.Errorf("%s index %d out of [0,%d)", r, idx, size),
	}
}
