package materialize

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Step is one statement of a Plan.
type Step int

const (
	Drop Step = iota
	Create
	AddKey
)

var stepNames = []string{"drop table", "create table", "add primary key"}

func (s Step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}
	return "unknown"
}

// Statement is a Step with its SQL.
type Statement struct {
	Step Step
	SQL  string
}

// Plan lists the statements that turn a query into a keyed table.
type Plan struct {
	Schema     string
	Table      string
	Statements []Statement
}

// NewPlan builds the drop, create and key statements for selectSQL.
func NewPlan(schema, table, selectSQL, keyColumn string) Plan {
	name := Qualified(schema, table)
	key := pgx.Identifier{keyColumn}.Sanitize()
	return Plan{
		Schema: schema,
		Table:  table,
		Statements: []Statement{
			{Step: Drop, SQL: "DROP TABLE IF EXISTS " + name},
			{Step: Create, SQL: "CREATE TABLE " + name + " AS (\n" +
				strings.TrimSpace(selectSQL) + "\n)"},
			{Step: AddKey, SQL: "ALTER TABLE " + name + " ADD PRIMARY KEY (" + key + ")"},
		},
	}
}

// Qualified returns the quoted table name of the plan.
func (p Plan) Qualified() string {
	return Qualified(p.Schema, p.Table)
}

// SQL returns the statements in execution order.
func (p Plan) SQL() []string {
	res := make([]string, len(p.Statements))
	for i, st := range p.Statements {
		res[i] = st.SQL
	}
	return res
}

// State is the progress of a Sequence.
type State int

const (
	// NotStarted means no table exists yet, including after a failed drop
	// or create.
	NotStarted State = iota
	// TableCreated means the table exists without its primary key.
	TableCreated
	// Keyed means the table is complete.
	Keyed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case TableCreated:
		return "table-created"
	case Keyed:
		return "keyed"
	}
	return "unknown"
}

// Executor runs one statement at a time on a single database session.
type Executor interface {
	Exec(ctx context.Context, sql string) error
}

// Sequence runs a Plan and remembers how far it went.
type Sequence struct {
	plan  Plan
	state State
}

// NewSequence creates a Sequence in the NotStarted state.
func NewSequence(plan Plan) *Sequence {
	return &Sequence{plan: plan}
}

// Plan returns the statements of the sequence.
func (s *Sequence) Plan() Plan {
	return s.plan
}

// State returns the current progress.
func (s *Sequence) State() State {
	return s.state
}

// Run executes the remaining statements in order. A failure while adding
// the key leaves the sequence in TableCreated, where Resume or Run only
// retries the key.
func (s *Sequence) Run(ctx context.Context, ex Executor) error {
	for _, st := range s.plan.Statements {
		if s.done(st.Step) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return StepError(s.plan, st.Step, err)
		}
		if err := ex.Exec(ctx, st.SQL); err != nil {
			return StepError(s.plan, st.Step, err)
		}
		switch st.Step {
		case Create:
			s.state = TableCreated
		case AddKey:
			s.state = Keyed
		}
	}
	return nil
}

// Resume retries the key of a table created by an earlier Run.
func (s *Sequence) Resume(ctx context.Context, ex Executor) error {
	if s.state != TableCreated {
		return ResumeStateError(s.plan, s.state)
	}
	return s.Run(ctx, ex)
}

// Reset forgets progress so that the next Run starts with the drop.
func (s *Sequence) Reset() {
	s.state = NotStarted
}

func (s *Sequence) done(step Step) bool {
	switch s.state {
	case TableCreated:
		return step == Drop || step == Create
	case Keyed:
		return true
	}
	return false
}
