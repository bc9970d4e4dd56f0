package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		msg    string
		err    error
		code   gn.ErrorCode
		path   string
		inside string
	}{
		{
			msg:    "create dir",
			err:    CreateDirError("/home/me/.config/lpodata", cause),
			code:   errcode.CreateDirError,
			path:   "/home/me/.config/lpodata",
			inside: "cannot create directory",
		},
		{
			msg:    "copy file",
			err:    CopyFileError("/home/me/.config/lpodata/taxa.yaml", cause),
			code:   errcode.CopyFileError,
			path:   "/home/me/.config/lpodata/taxa.yaml",
			inside: "cannot copy file",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			var gnErr *gn.Error
			require.ErrorAs(t, v.err, &gnErr)
			assert.Equal(t, v.code, gnErr.Code)
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, v.path, gnErr.Vars[0])
			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), v.inside)
			// caller context
			assert.Contains(t, gnErr.Err.Error(), "from ")
		})
	}
}
