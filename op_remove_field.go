package cetane

import "fmt"

// RemoveFieldOp emits ALTER TABLE ... DROP COLUMN ... when the backend
// supports it. Reversible only when WithDefinition has been supplied
// (normally via AddFieldOp.Reverse).
type RemoveFieldOp struct {
	Table    string
	Column   string
	field    Field
	hasField bool
}

func NewRemoveField(table, column string) *RemoveFieldOp {
	return &RemoveFieldOp{Table: table, Column: column}
}

// WithDefinition attaches the column's original definition, making the
// removal reversible back into an AddField.
func (op *RemoveFieldOp) WithDefinition(f *Field) *RemoveFieldOp {
	op.field = f.clone()
	op.hasField = true
	return op
}

func (op *RemoveFieldOp) isOperation() {}

func (op *RemoveFieldOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	if !b.Capabilities().DropColumn {
		return nil, unsupportedOperationErr(b.Name(), "drop column")
	}
	ctx.removeField(op.Table, op.Column)
	sql := "ALTER TABLE " + b.Quote(op.Table) + " DROP COLUMN " + b.Quote(op.Column)
	return []string{sql}, nil
}

func (op *RemoveFieldOp) Reverse() (Operation, bool) {
	if !op.hasField {
		return nil, false
	}
	return NewAddField(op.Table, &op.field), true
}

func (op *RemoveFieldOp) describe() string {
	return fmt.Sprintf("RemoveField(%s,%s)", op.Table, op.Column)
}
