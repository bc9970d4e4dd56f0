package materialize_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
	"github.com/lpoaura/lpodata/pkg/materialize"
	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2020, 4, 16, 10, 10, 10, 0, time.UTC)

type fakeExec struct {
	stmts  []string
	failAt int
	fails  int
}

func (f *fakeExec) Exec(_ context.Context, sql string) error {
	f.stmts = append(f.stmts, sql)
	if f.fails > 0 && len(f.stmts) == f.failAt {
		f.fails--
		return errors.New("boom")
	}
	return nil
}

func query() *report.Query {
	return &report.Query{
		Kind:      report.Histogram,
		SQL:       "SELECT 1 AS id",
		KeyColumn: "id",
		Name:      "Étude Oiseaux 2020",
	}
}

func TestTableName(t *testing.T) {
	res, err := materialize.TableName("Étude Oiseaux 2020", now, false)
	require.NoError(t, err)
	assert.Equal(t, "etude_oiseaux_2020", res)

	res, err = materialize.TableName("Étude Oiseaux 2020", now, true)
	require.NoError(t, err)
	assert.Equal(t, "etude_oiseaux_2020_20200416_101010", res)

	res, err = materialize.TableName(strings.Repeat("x", 80), now, true)
	require.NoError(t, err)
	assert.Len(t, res, 63)
	assert.True(t, strings.HasSuffix(res, "_20200416_101010"))

	_, err = materialize.TableName("???", now, false)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReportOutputNameError, gnErr.Code)
}

func TestPrepareVirtual(t *testing.T) {
	s := materialize.Strategy{Schema: "reports"}
	tgt, err := s.Prepare(query(), false, now)
	require.NoError(t, err)
	assert.Equal(t, materialize.Virtual, tgt.Mode)
	assert.Nil(t, tgt.Sequence)
	assert.Equal(t, "(SELECT 1 AS id)", tgt.Relation())
	assert.Equal(t, "id", tgt.KeyColumn())
}

func TestPrepareTable(t *testing.T) {
	s := materialize.Strategy{}
	tgt, err := s.Prepare(query(), true, now)
	require.NoError(t, err)
	assert.Equal(t, materialize.Table, tgt.Mode)
	assert.Equal(t, "public", tgt.Schema)
	assert.Equal(t, "etude_oiseaux_2020", tgt.Table)
	assert.Equal(t, `"public"."etude_oiseaux_2020"`, tgt.Relation())

	plan := tgt.Sequence.Plan()
	steps := make([]materialize.Step, len(plan.Statements))
	for i, st := range plan.Statements {
		steps[i] = st.Step
	}
	assert.Equal(t,
		[]materialize.Step{materialize.Drop, materialize.Create, materialize.AddKey},
		steps)
	assert.Equal(t, []string{
		`DROP TABLE IF EXISTS "public"."etude_oiseaux_2020"`,
		"CREATE TABLE \"public\".\"etude_oiseaux_2020\" AS (\nSELECT 1 AS id\n)",
		`ALTER TABLE "public"."etude_oiseaux_2020" ADD PRIMARY KEY ("id")`,
	}, plan.SQL())
}

func TestSequenceRun(t *testing.T) {
	ctx := context.Background()
	plan := materialize.NewPlan("public", "t", "SELECT 1 AS id", "id")

	seq := materialize.NewSequence(plan)
	ex := &fakeExec{}
	require.NoError(t, seq.Run(ctx, ex))
	assert.Equal(t, materialize.Keyed, seq.State())
	assert.Equal(t, plan.SQL(), ex.stmts)

	// nothing left to do
	require.NoError(t, seq.Run(ctx, ex))
	assert.Len(t, ex.stmts, 3)
}

func TestSequenceFailures(t *testing.T) {
	ctx := context.Background()
	plan := materialize.NewPlan("public", "t", "SELECT 1 AS id", "id")

	tests := []struct {
		msg    string
		failAt int
		state  materialize.State
		code   gn.ErrorCode
	}{
		{"drop", 1, materialize.NotStarted, errcode.MaterializeDropError},
		{"create", 2, materialize.NotStarted, errcode.MaterializeCreateError},
		{"key", 3, materialize.TableCreated, errcode.MaterializeKeyError},
	}

	for _, v := range tests {
		seq := materialize.NewSequence(plan)
		ex := &fakeExec{failAt: v.failAt, fails: 1}
		err := seq.Run(ctx, ex)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Equal(t, v.state, seq.State(), v.msg)
		assert.Len(t, ex.stmts, v.failAt, v.msg)
	}
}

func TestSequenceResume(t *testing.T) {
	ctx := context.Background()
	plan := materialize.NewPlan("public", "t", "SELECT 1 AS id", "id")
	seq := materialize.NewSequence(plan)

	err := seq.Resume(ctx, &fakeExec{})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MaterializeResumeError, gnErr.Code)

	ex := &fakeExec{failAt: 3, fails: 1}
	require.Error(t, seq.Run(ctx, ex))
	assert.Equal(t, materialize.TableCreated, seq.State())

	ex.stmts = nil
	require.NoError(t, seq.Resume(ctx, ex))
	assert.Equal(t, materialize.Keyed, seq.State())
	assert.Equal(t, []string{plan.Statements[2].SQL}, ex.stmts)

	seq.Reset()
	assert.Equal(t, materialize.NotStarted, seq.State())
}

func TestSequenceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	seq := materialize.NewSequence(
		materialize.NewPlan("public", "t", "SELECT 1 AS id", "id"),
	)
	ex := &fakeExec{}
	require.Error(t, seq.Run(ctx, ex))
	assert.Empty(t, ex.stmts)
	assert.Equal(t, materialize.NotStarted, seq.State())
}
