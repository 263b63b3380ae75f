package cetane

import "fmt"

// AddIndexOp emits CREATE [UNIQUE] INDEX. Always reversible: the inverse
// is RemoveIndex carrying this index's definition.
type AddIndexOp struct {
	Index Index
}

func NewAddIndex(idx *Index) *AddIndexOp {
	return &AddIndexOp{Index: idx.clone()}
}

func (op *AddIndexOp) isOperation() {}

func (op *AddIndexOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	i := op.Index
	sql := "CREATE "
	if i.Unique {
		sql += "UNIQUE "
	}
	sql += "INDEX " + b.Quote(i.Name) + " ON " + b.Quote(i.Table) + "(" + indexColumnsSQL(b, i.Columns) + ")"
	if i.Filter != "" {
		if b.Capabilities().PartialIndex {
			sql += " WHERE " + i.Filter
		} else {
			ctx.warnf("index %q: backend %q has no partial-index support, dropping filter %q", i.Name, b.Name(), i.Filter)
		}
	}
	return []string{sql}, nil
}

func indexColumnsSQL(b Backend, cols []IndexColumn) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = b.Quote(c.Name) + " " + c.Direction.sql()
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

func (op *AddIndexOp) Reverse() (Operation, bool) {
	remove := NewRemoveIndex(op.Index.Table, op.Index.Name)
	remove.WithDefinition(&op.Index)
	return remove, true
}

func (op *AddIndexOp) describe() string {
	return fmt.Sprintf("AddIndex(%v)", op.Index)
}
