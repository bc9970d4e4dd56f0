package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/internal/iotesting"
	"github.com/lpoaura/lpodata/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests need a PostGIS server. Credentials come from
// LPODATA_DATABASE_* variables, ~/.config/lpodata/config.yaml or defaults,
// the database name is always forced to lpodata_test. Run with -short to
// skip them.

func TestPgxOperatorConnect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err)
	defer op.Close()

	exists, err := op.TableExists(ctx, "public", "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)

	gdb, err := op.GORM()
	require.NoError(t, err)
	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestPgxOperatorConnectInvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	err := iodb.NewPgxOperator().Connect(context.Background(), cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
}

func TestPgxOperatorExec(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	defer op.Close()

	err := op.Exec(ctx,
		"DROP TABLE IF EXISTS public.iodb_exec_test",
		"CREATE TABLE public.iodb_exec_test (id int)",
	)
	require.NoError(t, err)
	defer func() { _ = op.Exec(ctx, "DROP TABLE IF EXISTS public.iodb_exec_test") }()

	exists, err := op.TableExists(ctx, "public", "iodb_exec_test")
	require.NoError(t, err)
	assert.True(t, exists)

	err = op.Exec(ctx, "SELECT 1", "SELECT * FROM missing_table_xyz")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBExecError, gnErr.Code)
	assert.Equal(t, []any{2}, gnErr.Vars)
}

func TestPgxOperatorNotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "public", "t")
	assert.Error(t, err)
	assert.Error(t, op.Exec(ctx, "SELECT 1"))
	_, err = op.GORM()
	assert.Error(t, err)
	assert.NoError(t, op.Close())
}
