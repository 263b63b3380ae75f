package cetane

import "fmt"

// AlterFieldOp lowers a FieldChanges partial update against a column.
// Reversible only when WithReverse has been supplied — the framework has
// no way to compute the inverse of an arbitrary change set on its own.
type AlterFieldOp struct {
	Table   string
	Column  string
	Changes *FieldChanges

	reverseChanges *FieldChanges
}

// NewAlterField builds an AlterField operation. changes must not be empty.
func NewAlterField(table, column string, changes *FieldChanges) *AlterFieldOp {
	return &AlterFieldOp{Table: table, Column: column, Changes: changes.clone()}
}

// WithReverse attaches the change set that undoes this alteration,
// making it reversible.
func (op *AlterFieldOp) WithReverse(reverse *FieldChanges) *AlterFieldOp {
	op.reverseChanges = reverse.clone()
	return op
}

func (op *AlterFieldOp) isOperation() {}

func (op *AlterFieldOp) ForwardSQL(ctx *GenContext, b Backend) ([]string, error) {
	if op.Changes.IsEmpty() {
		return nil, newError(KindUnsupportedOperation, fmt.Sprintf("AlterField(%s,%s): empty change set", op.Table, op.Column))
	}
	if !b.Capabilities().AlterColumnType {
		return op.forwardRecreate(ctx, b)
	}
	if b.Name() == NameMySQL {
		return op.forwardModifyColumn(ctx, b)
	}
	return op.forwardAlterColumn(ctx, b)
}

// forwardAlterColumn emits one ALTER TABLE ... ALTER COLUMN statement per
// changed aspect, the form PostgreSQL (and any similar dialect) accepts.
func (op *AlterFieldOp) forwardAlterColumn(ctx *GenContext, b Backend) ([]string, error) {
	var stmts []string
	table := b.Quote(op.Table)
	col := b.Quote(op.Column)
	c := op.Changes

	if c.Type != nil {
		stmts = append(stmts, "ALTER TABLE "+table+" ALTER COLUMN "+col+" TYPE "+b.MapType(*c.Type))
	}
	if c.Nullable != nil {
		if *c.Nullable {
			stmts = append(stmts, "ALTER TABLE "+table+" ALTER COLUMN "+col+" DROP NOT NULL")
		} else {
			stmts = append(stmts, "ALTER TABLE "+table+" ALTER COLUMN "+col+" SET NOT NULL")
		}
	}
	if c.Default != nil {
		if *c.Default == "" {
			stmts = append(stmts, "ALTER TABLE "+table+" ALTER COLUMN "+col+" DROP DEFAULT")
		} else {
			stmts = append(stmts, "ALTER TABLE "+table+" ALTER COLUMN "+col+" SET DEFAULT "+*c.Default)
		}
	}
	if c.Unique != nil {
		name := b.Quote(uniqueConstraintName(op.Table, op.Column))
		if *c.Unique {
			stmts = append(stmts, "ALTER TABLE "+table+" ADD CONSTRAINT "+name+" UNIQUE ("+col+")")
		} else {
			stmts = append(stmts, "ALTER TABLE "+table+" DROP CONSTRAINT "+name)
		}
	}
	if c.PrimaryKey != nil {
		if *c.PrimaryKey {
			stmts = append(stmts, "ALTER TABLE "+table+" ADD PRIMARY KEY ("+col+")")
		} else {
			stmts = append(stmts, "ALTER TABLE "+table+" DROP CONSTRAINT "+b.Quote(op.Table+"_pkey"))
		}
	}

	ctx.alterField(op.Table, op.Column, c)
	return stmts, nil
}

// forwardModifyColumn renders MySQL's single MODIFY COLUMN statement,
// which must restate the full column definition.
func (op *AlterFieldOp) forwardModifyColumn(ctx *GenContext, b Backend) ([]string, error) {
	shape := ctx.shapeOf(op.Table)
	var current Field
	found := false
	if shape != nil {
		for _, f := range shape.fields {
			if f.Name == op.Column {
				current = f.clone()
				found = true
				break
			}
		}
	}
	if !found {
		current = Field{Name: op.Column, Type: Text, Nullable: true}
	}
	applyFieldChanges(&current, op.Changes)

	sql := "ALTER TABLE " + b.Quote(op.Table) + " MODIFY COLUMN " + columnDefSQL(b, current, false)
	ctx.alterField(op.Table, op.Column, op.Changes)
	return []string{sql}, nil
}

// forwardRecreate implements the SQLite table-recreation fallback: rename
// to a backup name, create the new shape, copy rows across, drop the
// backup, all bracketed by PRAGMA foreign_keys off/on.
func (op *AlterFieldOp) forwardRecreate(ctx *GenContext, b Backend) ([]string, error) {
	shape := ctx.shapeOf(op.Table)
	if shape == nil {
		return nil, newError(KindUnsupportedOperation, fmt.Sprintf("AlterField(%s,%s): table shape unknown in this run, cannot recreate", op.Table, op.Column))
	}

	newFields := cloneFields(shape.fields)
	found := false
	for i := range newFields {
		if newFields[i].Name == op.Column {
			applyFieldChanges(&newFields[i], op.Changes)
			found = true
		}
	}
	if !found {
		return nil, newError(KindUnsupportedOperation, fmt.Sprintf("AlterField(%s,%s): column not found in tracked shape", op.Table, op.Column))
	}

	backup := op.Table + "__cetane_old"
	colList := quoteJoin(b, shape.columnNames())

	stmts := []string{
		"PRAGMA foreign_keys=OFF",
		"ALTER TABLE " + b.Quote(op.Table) + " RENAME TO " + b.Quote(backup),
		createTableSQL(b, op.Table, newFields, shape.constraints),
		"INSERT INTO " + b.Quote(op.Table) + " (" + colList + ") SELECT " + colList + " FROM " + b.Quote(backup),
		"DROP TABLE " + b.Quote(backup),
		"PRAGMA foreign_keys=ON",
	}

	ctx.alterField(op.Table, op.Column, op.Changes)
	return stmts, nil
}

func applyFieldChanges(f *Field, c *FieldChanges) {
	if c.Type != nil {
		f.Type = *c.Type
	}
	if c.Nullable != nil {
		f.Nullable = *c.Nullable
	}
	if c.Default != nil {
		f.Default = *c.Default
		f.HasDefault = *c.Default != ""
	}
	if c.Unique != nil {
		f.Unique = *c.Unique
	}
	if c.PrimaryKey != nil {
		f.PrimaryKey = *c.PrimaryKey
	}
}

func uniqueConstraintName(table, column string) string {
	return "ux_" + table + "_" + column
}

func (op *AlterFieldOp) Reverse() (Operation, bool) {
	if op.reverseChanges == nil {
		return nil, false
	}
	return NewAlterField(op.Table, op.Column, op.reverseChanges).WithReverse(op.Changes), true
}

func (op *AlterFieldOp) describe() string {
	return fmt.Sprintf("AlterField(%s,%s,%v)", op.Table, op.Column, op.Changes)
}
