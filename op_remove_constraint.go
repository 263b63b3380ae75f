package cetane

import "fmt"

// RemoveConstraintOp emits ALTER TABLE ... DROP CONSTRAINT ... .
// Reversible only when WithDefinition has been supplied (normally via
// AddConstraintOp.Reverse).
type RemoveConstraintOp struct {
	Table         string
	Name          string
	constraint    Constraint
	hasConstraint bool
}

func NewRemoveConstraint(table, name string) *RemoveConstraintOp {
	return &RemoveConstraintOp{Table: table, Name: name}
}

// WithDefinition attaches the constraint's original definition, making
// the removal reversible back into an AddConstraint.
func (op *RemoveConstraintOp) WithDefinition(c Constraint) *RemoveConstraintOp {
	cp := c
	cp.Columns = append([]string(nil), c.Columns...)
	cp.RefColumns = append([]string(nil), c.RefColumns...)
	op.constraint = cp
	op.hasConstraint = true
	return op
}

func (op *RemoveConstraintOp) isOperation() {}

func (op *RemoveConstraintOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	sql := "ALTER TABLE " + b.Quote(op.Table) + " DROP CONSTRAINT " + b.Quote(op.Name)
	return []string{sql}, nil
}

func (op *RemoveConstraintOp) Reverse() (Operation, bool) {
	if !op.hasConstraint {
		return nil, false
	}
	return NewAddConstraint(op.Table, op.constraint), true
}

func (op *RemoveConstraintOp) describe() string {
	return fmt.Sprintf("RemoveConstraint(%s,%s)", op.Table, op.Name)
}
