// Package iomaterialize implements the Materializer interface. It runs the
// drop, create and key statements of a table target on one pooled
// connection while holding a PostgreSQL advisory lock on the table name.
package iomaterialize

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/pkg/db"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
	"github.com/lpoaura/lpodata/pkg/materialize"
)

type materializer struct {
	operator db.Operator
}

// New creates a Materializer that uses the pool of op.
func New(op db.Operator) lifecycle.Materializer {
	return &materializer{operator: op}
}

// LockKey returns the advisory lock key of a qualified table name.
func LockKey(qualified string) int64 {
	return int64(xxhash.Sum64String(qualified))
}

// Materialize runs the remaining steps of seq. Another run that
// materializes the same table waits until this one releases the lock.
func (m *materializer) Materialize(
	ctx context.Context,
	seq *materialize.Sequence,
) error {
	if m.operator == nil || m.operator.Pool() == nil {
		return iodb.NotConnectedError()
	}
	plan := seq.Plan()
	table := plan.Qualified()
	key := LockKey(table)

	conn, err := m.operator.Pool().Acquire(ctx)
	if err != nil {
		return LockError(table, err)
	}
	defer conn.Release()

	start := time.Now()
	slog.Debug("Waiting for table lock", "table", table, "key", key)
	if _, err = conn.Exec(ctx, "SELECT pg_advisory_lock($1)", key); err != nil {
		return LockError(table, err)
	}
	defer func() {
		_, err := conn.Exec(context.WithoutCancel(ctx),
			"SELECT pg_advisory_unlock($1)", key)
		if err != nil {
			slog.Warn("Cannot release table lock", "table", table, "error", err)
		}
	}()

	ex := &connExecutor{conn: conn}
	if seq.State() == materialize.TableCreated {
		slog.Info("Resuming materialization", "table", table)
		err = seq.Resume(ctx, ex)
	} else {
		err = seq.Run(ctx, ex)
	}
	if err != nil {
		slog.Error("Materialization failed",
			"table", table, "state", seq.State().String(), "error", err)
		return err
	}

	slog.Info("Table materialized",
		"table", table,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// connExecutor runs statements of a Sequence on a held connection.
type connExecutor struct {
	conn *pgxpool.Conn
}

func (c *connExecutor) Exec(ctx context.Context, sql string) error {
	slog.Debug("Executing statement", "sql", sql)
	_, err := c.conn.Exec(ctx, sql)
	return err
}
