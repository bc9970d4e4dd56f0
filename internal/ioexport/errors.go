package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// FormatError reports an export path with an unsupported extension.
func FormatError(path string) error {
	msg := `Cannot guess the export format of <em>%s</em>

<em>How to fix:</em>
  Use a .sqlite, .db or .csv file extension`

	return &gn.Error{
		Code: errcode.ExportFormatError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("unknown export format of %s", path),
	}
}

// WriteError reports a failure while writing an export file.
func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  "Cannot write <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("export to %s: %w", path, err),
	}
}
