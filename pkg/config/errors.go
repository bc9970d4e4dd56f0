package config

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// UnknownConnectionError is returned when a report asks for a connection
// that is not configured.
func UnknownConnectionError(name string, known []string) error {
	msg := `Unknown database connection <em>%s</em>

<em>Known connections:</em> %s

<em>How to fix:</em>
  Add the connection under 'connections:' in config.yaml`

	return &gn.Error{
		Code: errcode.DBUnknownConnectionError,
		Msg:  msg,
		Vars: []any{name, strings.Join(known, ", ")},
		Err:  fmt.Errorf("unknown connection %q", name),
	}
}
