package cetane

import "fmt"

// RunSQLOp emits a caller-provided SQL string unchanged, for anything the
// typed operations can't express. ReverseSQL, if set, becomes the
// operation's reverse; otherwise it is not reversible.
//
// Portable holds a backend-name → SQL mapping (see Portable/ForBackend):
// when set, ForwardSQL looks up the active backend's entry and emits it,
// or emits nothing at all if the active backend has no entry — a no-op,
// not an error, per the documented RunSql::portable behavior.
type RunSQLOp struct {
	SQL        string
	ReverseSQL string
	hasReverse bool

	portable map[Name]string
}

func NewRunSQL(sql string) *RunSQLOp {
	return &RunSQLOp{SQL: sql}
}

// WithReverseSQL attaches the statement that undoes this one.
func (op *RunSQLOp) WithReverseSQL(sql string) *RunSQLOp {
	op.ReverseSQL = sql
	op.hasReverse = true
	return op
}

// Portable starts a backend-name-keyed variant of RunSql. The returned
// operation ignores SQL/ReverseSQL and instead dispatches on the active
// backend's name at ForwardSQL time.
func Portable() *RunSQLOp {
	return &RunSQLOp{portable: make(map[Name]string)}
}

// ForBackend registers the SQL to emit when the active backend matches
// name. Chainable: Portable().ForBackend(...).ForBackend(...).
func (op *RunSQLOp) ForBackend(name Name, sql string) *RunSQLOp {
	if op.portable == nil {
		op.portable = make(map[Name]string)
	}
	op.portable[name] = sql
	return op
}

func (op *RunSQLOp) isOperation() {}

func (op *RunSQLOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	if op.portable != nil {
		sql, ok := op.portable[b.Name()]
		if !ok {
			ctx.warnf("RunSql::portable has no entry for backend %q, treating as no-op", b.Name())
			return nil, nil
		}
		return []string{sql}, nil
	}
	return []string{op.SQL}, nil
}

func (op *RunSQLOp) Reverse() (Operation, bool) {
	if op.portable != nil || !op.hasReverse {
		return nil, false
	}
	return NewRunSQL(op.ReverseSQL), true
}

func (op *RunSQLOp) describe() string {
	if op.portable != nil {
		return fmt.Sprintf("RunSql::portable(%v)", op.portable)
	}
	return fmt.Sprintf("RunSql(%s)", op.SQL)
}
