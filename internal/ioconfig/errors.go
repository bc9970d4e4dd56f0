package ioconfig

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// ReadConfigError reports an unreadable config file.
func ReadConfigError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read configuration <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("read config %s: %w", path, err),
	}
}
