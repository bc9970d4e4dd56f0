package materialize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// TableNameError reports an output name that gives no table name.
func TableNameError(name string) error {
	return &gn.Error{
		Code: errcode.ReportOutputNameError,
		Msg:  "Output name <em>%s</em> gives no usable table name",
		Vars: []any{name},
		Err:  fmt.Errorf("no identifier in output name %q", name),
	}
}

// StepError wraps the failure of one statement. A failed key is reported
// with its own code because the table it leaves behind is usable but
// has no primary key.
func StepError(p Plan, step Step, err error) error {
	code := errcode.MaterializeDropError
	msg := "Cannot drop table <em>%s</em>"
	switch step {
	case Create:
		code = errcode.MaterializeCreateError
		msg = "Cannot create table <em>%s</em>"
	case AddKey:
		code = errcode.MaterializeKeyError
		msg = "Table <em>%s</em> was created but has no primary key"
	}
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{p.Qualified()},
		Err:  fmt.Errorf("%s %s: %w", step, p.Qualified(), err),
	}
}

// ResumeStateError reports a sequence that cannot resume from its state.
func ResumeStateError(p Plan, state State) error {
	return &gn.Error{
		Code: errcode.MaterializeResumeError,
		Msg:  "Table <em>%s</em> cannot be resumed from state %s",
		Vars: []any{p.Qualified(), state},
		Err:  fmt.Errorf("resume %s from %s", p.Qualified(), state),
	}
}
