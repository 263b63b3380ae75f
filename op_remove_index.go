package cetane

import "fmt"

// RemoveIndexOp emits DROP INDEX. Reversible only when WithDefinition has
// been supplied (normally via AddIndexOp.Reverse).
type RemoveIndexOp struct {
	Table    string
	Name     string
	index    Index
	hasIndex bool
}

func NewRemoveIndex(table, name string) *RemoveIndexOp {
	return &RemoveIndexOp{Table: table, Name: name}
}

// WithDefinition attaches the index's original definition, making the
// removal reversible back into an AddIndex.
func (op *RemoveIndexOp) WithDefinition(i *Index) *RemoveIndexOp {
	op.index = i.clone()
	op.hasIndex = true
	return op
}

func (op *RemoveIndexOp) isOperation() {}

func (op *RemoveIndexOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	return []string{"DROP INDEX " + b.Quote(op.Name)}, nil
}

func (op *RemoveIndexOp) Reverse() (Operation, bool) {
	if !op.hasIndex {
		return nil, false
	}
	return NewAddIndex(&op.index), true
}

func (op *RemoveIndexOp) describe() string {
	return fmt.Sprintf("RemoveIndex(%s,%s)", op.Table, op.Name)
}
