package iostudyarea

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// ReadError reports a study area source that cannot be read.
func ReadError(source string, err error) error {
	return &gn.Error{
		Code: errcode.StudyAreaReadError,
		Msg:  "Cannot read study area from <em>%s</em>",
		Vars: []any{source},
		Err:  fmt.Errorf("study area %s: %w", source, err),
	}
}
