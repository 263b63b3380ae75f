package cetane

import "fmt"

// DropTableOp emits DROP TABLE. It is reversible only when the caller has
// supplied the original shape via WithFields/WithConstraints (normally
// done automatically when derived from CreateTableOp.Reverse).
type DropTableOp struct {
	Table       string
	fields      []Field
	constraints []Constraint
	hasShape    bool
}

// NewDropTable builds a DropTable operation with no recorded shape; it is
// irreversible until WithFields is called.
func NewDropTable(table string) *DropTableOp {
	return &DropTableOp{Table: table}
}

// WithFields attaches the table's original column definitions, making the
// drop reversible back into a CreateTable.
func (op *DropTableOp) WithFields(fields []Field) *DropTableOp {
	op.fields = cloneFields(fields)
	op.hasShape = true
	return op
}

// WithConstraints attaches the table's original table-level constraints.
func (op *DropTableOp) WithConstraints(constraints []Constraint) *DropTableOp {
	op.constraints = cloneConstraints(constraints)
	return op
}

func (op *DropTableOp) isOperation() {}

func (op *DropTableOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	ctx.dropTable(op.Table)
	return []string{"DROP TABLE " + b.Quote(op.Table)}, nil
}

func (op *DropTableOp) Reverse() (Operation, bool) {
	if !op.hasShape {
		return nil, false
	}
	return NewCreateTable(op.Table, op.fields, op.constraints...), true
}

func (op *DropTableOp) describe() string {
	return fmt.Sprintf("DropTable(%s)", op.Table)
}
