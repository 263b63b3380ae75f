package cetane

import "fmt"

// RenameFieldOp emits ALTER TABLE ... RENAME COLUMN ... TO ... . Always
// reversible: swapping the names back is self-describing.
type RenameFieldOp struct {
	Table string
	From  string
	To    string
}

func NewRenameField(table, from, to string) *RenameFieldOp {
	return &RenameFieldOp{Table: table, From: from, To: to}
}

func (op *RenameFieldOp) isOperation() {}

func (op *RenameFieldOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	if !b.Capabilities().RenameColumn {
		return nil, unsupportedOperationErr(b.Name(), "rename column")
	}
	ctx.renameField(op.Table, op.From, op.To)
	sql := "ALTER TABLE " + b.Quote(op.Table) + " RENAME COLUMN " + b.Quote(op.From) + " TO " + b.Quote(op.To)
	return []string{sql}, nil
}

func (op *RenameFieldOp) Reverse() (Operation, bool) {
	return NewRenameField(op.Table, op.To, op.From), true
}

func (op *RenameFieldOp) describe() string {
	return fmt.Sprintf("RenameField(%s,%s,%s)", op.Table, op.From, op.To)
}
