package cetane

import "fmt"

// CreateTableOp emits CREATE TABLE. Its reverse is always derivable: a
// DropTable carrying the original field/constraint definitions so that
// rolling back a create can itself be rolled forward again.
type CreateTableOp struct {
	Table       string
	Fields      []Field
	Constraints []Constraint
}

// NewCreateTable builds a CreateTable operation.
func NewCreateTable(table string, fields []Field, constraints ...Constraint) *CreateTableOp {
	return &CreateTableOp{Table: table, Fields: cloneFields(fields), Constraints: cloneConstraints(constraints)}
}

func (op *CreateTableOp) isOperation() {}

func (op *CreateTableOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	ctx.createTable(op.Table, op.Fields, op.Constraints)
	return []string{createTableSQL(b, op.Table, op.Fields, op.Constraints)}, nil
}

func (op *CreateTableOp) Reverse() (Operation, bool) {
	drop := NewDropTable(op.Table)
	drop.WithFields(op.Fields)
	drop.WithConstraints(op.Constraints)
	return drop, true
}

func (op *CreateTableOp) describe() string {
	return fmt.Sprintf("CreateTable(%s,%v,%v)", op.Table, op.Fields, op.Constraints)
}
