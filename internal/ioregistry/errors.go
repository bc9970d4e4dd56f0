package ioregistry

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
	"github.com/lpoaura/lpodata/pkg/taxon"
)

// ReadError reports an unreadable or malformed taxa file.
func ReadError(path string, err error) error {
	msg := `Cannot read taxon options from <em>%s</em>

<em>How to fix:</em>
  Fix the YAML syntax, or remove the file and run
  <em>lpodata taxa refresh</em>`

	return &gn.Error{
		Code: errcode.RegistryReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("read %s: %w", path, err),
	}
}

// WriteError reports a taxa file that cannot be saved.
func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.RegistryWriteError,
		Msg:  "Cannot write taxon options to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("write %s: %w", path, err),
	}
}

// RefreshError reports a failed label query for one rank.
func RefreshError(r taxon.Rank, err error) error {
	return &gn.Error{
		Code: errcode.RegistryRefreshError,
		Msg:  "Cannot read labels of rank <em>%s</em> from the database",
		Vars: []any{r},
		Err:  fmt.Errorf("refresh %s: %w", r, err),
	}
}
