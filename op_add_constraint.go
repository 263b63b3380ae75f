package cetane

import "fmt"

// AddConstraintOp emits ALTER TABLE ... ADD CONSTRAINT ... . Always
// reversible: the inverse is RemoveConstraint carrying this definition.
type AddConstraintOp struct {
	Table      string
	Constraint Constraint
}

func NewAddConstraint(table string, c Constraint) *AddConstraintOp {
	cp := c
	cp.Columns = append([]string(nil), c.Columns...)
	cp.RefColumns = append([]string(nil), c.RefColumns...)
	return &AddConstraintOp{Table: table, Constraint: cp}
}

func (op *AddConstraintOp) isOperation() {}

func (op *AddConstraintOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	sql := "ALTER TABLE " + b.Quote(op.Table) + " ADD " + constraintDefSQL(b, op.Constraint)
	return []string{sql}, nil
}

func (op *AddConstraintOp) Reverse() (Operation, bool) {
	remove := NewRemoveConstraint(op.Table, op.Constraint.Name)
	remove.WithDefinition(op.Constraint)
	return remove, true
}

func (op *AddConstraintOp) describe() string {
	return fmt.Sprintf("AddConstraint(%s,%v)", op.Table, op.Constraint)
}
