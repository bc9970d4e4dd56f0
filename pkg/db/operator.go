package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lpoaura/lpodata/pkg/config"
	"gorm.io/gorm"
)

// Operator defines basic database operations. Report components reach
// PostgreSQL through the pool it exposes: materialization holds one
// connection for its statements, layers stream rows from it.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// GORM returns a gorm handle sharing the pool, for model based
	// queries.
	GORM() (*gorm.DB, error)

	// TableExists checks if schema.table exists.
	TableExists(ctx context.Context, schema, table string) (bool, error)

	// Exec runs statements in order on a single connection and stops at
	// the first failure.
	Exec(ctx context.Context, stmts ...string) error
}
