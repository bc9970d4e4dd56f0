package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// CreateDirError reports a directory that cannot be created.
func CreateDirError(dir string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create %s",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: cannot create directory: %w", fn.Name(), err),
	}
}

// CopyFileError reports a default file that cannot be written.
func CopyFileError(file string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  "Cannot write default file to %s",
		Vars: []any{file},
		Err:  fmt.Errorf("from %s: cannot copy file: %w", fn.Name(), err),
	}
}
