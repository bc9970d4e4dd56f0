// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/lpoaura/lpodata/pkg/datasource"
	"github.com/lpoaura/lpodata/pkg/db"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
	gdb  *gorm.DB
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := datasource.NewBuilder(*cfg).DSN()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// reports are few and long, a small pool is enough
	poolConfig.MaxConns = 8
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	p.pool = nil
	p.gdb = nil
	return nil
}

// Pool returns the underlying pgxpool.Pool.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *pgxOperator) GORM() (*gorm.DB, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}
	if p.gdb != nil {
		return p.gdb, nil
	}

	sqlDB := stdlib.OpenDBFromPool(p.pool)
	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	p.gdb = gdb
	return gdb, nil
}

// TableExists checks if schema.table exists in the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	schema, table string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = $1
			AND table_name = $2
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, schema, table).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(schema+"."+table, err)
	}

	return exists, nil
}

func (p *pgxOperator) Exec(ctx context.Context, stmts ...string) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return ExecError(0, "", err)
	}
	defer conn.Release()

	for i, st := range stmts {
		if _, err = conn.Exec(ctx, st); err != nil {
			return ExecError(i, st, err)
		}
	}
	return nil
}
