package cetane

import "fmt"

// AddFieldOp emits ALTER TABLE ... ADD COLUMN ... . Always reversible:
// the inverse is RemoveField carrying this field's definition.
type AddFieldOp struct {
	Table string
	Field Field
}

func NewAddField(table string, field *Field) *AddFieldOp {
	return &AddFieldOp{Table: table, Field: field.clone()}
}

func (op *AddFieldOp) isOperation() {}

func (op *AddFieldOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	ctx.addField(op.Table, op.Field)
	sql := "ALTER TABLE " + b.Quote(op.Table) + " ADD COLUMN " + columnDefSQL(b, op.Field, false)
	return []string{sql}, nil
}

func (op *AddFieldOp) Reverse() (Operation, bool) {
	remove := NewRemoveField(op.Table, op.Field.Name)
	remove.WithDefinition(&op.Field)
	return remove, true
}

func (op *AddFieldOp) describe() string {
	return fmt.Sprintf("AddField(%s,%v)", op.Table, op.Field)
}
