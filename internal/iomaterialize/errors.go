package iomaterialize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// LockError is returned when the connection or the advisory lock of a
// table cannot be obtained.
func LockError(table string, err error) error {
	msg := `Cannot lock table <em>%s</em> for materialization

<em>Possible causes:</em>
  - the database connection was lost
  - the run was canceled while another run was writing the same table

<em>How to fix:</em>
  Check active runs with:
  <em>SELECT * FROM pg_locks WHERE locktype = 'advisory'</em>`

	return &gn.Error{
		Code: errcode.MaterializeLockError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("lock %s: %w", table, err),
	}
}
