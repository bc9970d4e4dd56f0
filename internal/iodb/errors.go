package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// ConnectionError creates an error for a failed connection.
func ConnectionError(host string, port int, database, user string, err error) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>
  3. Review connection settings in ~/.config/lpodata/config.yaml
     or LPODATA_DATABASE_* variables (database: %s)`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{host, port, host, user, database},
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when an operation needs a pool that was
// not opened.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError reports a failure to open gorm on the pool.
func GORMConnectionError(err error) error {
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  "Cannot open a GORM session on the connection pool",
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// TableExistsCheckError reports a failed lookup of a table.
func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  "Cannot check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("check table %s: %w", table, err),
	}
}

// ExecError reports the failed statement. The statement is kept in the
// error for diagnostics.
func ExecError(idx int, stmt string, err error) error {
	return &gn.Error{
		Code: errcode.DBExecError,
		Msg:  "SQL statement <em>%d</em> failed",
		Vars: []any{idx + 1},
		Err:  fmt.Errorf("statement %d %q: %w", idx+1, stmt, err),
	}
}

// QueryError reports a failed query.
func QueryError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  "Query failed",
		Err:  fmt.Errorf("query: %w", err),
	}
}
