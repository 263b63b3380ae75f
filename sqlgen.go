package cetane

import "strings"

// columnDefSQL renders one column definition for a CREATE TABLE statement,
// including inline PRIMARY KEY / UNIQUE / NOT NULL / DEFAULT / REFERENCES
// clauses.
func columnDefSQL(b Backend, f Field, singlePK bool) string {
	var sb strings.Builder
	sb.WriteString(b.Quote(f.Name))
	sb.WriteByte(' ')
	sb.WriteString(b.MapType(f.Type))
	inlinePK := f.PrimaryKey && singlePK
	if !f.Nullable && !inlinePK {
		sb.WriteString(" NOT NULL")
	}
	if f.HasDefault {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(f.Default)
	}
	if inlinePK {
		sb.WriteString(" PRIMARY KEY")
	}
	if f.Unique && !inlinePK {
		sb.WriteString(" UNIQUE")
	}
	if f.FK != nil {
		sb.WriteString(" REFERENCES ")
		sb.WriteString(b.Quote(f.FK.Table))
		sb.WriteByte('(')
		sb.WriteString(b.Quote(f.FK.Column))
		sb.WriteByte(')')
		if f.FK.OnDelete != NoAction {
			sb.WriteString(" ON DELETE ")
			sb.WriteString(f.FK.OnDelete.sql())
		}
		if f.FK.OnUpdate != NoAction {
			sb.WriteString(" ON UPDATE ")
			sb.WriteString(f.FK.OnUpdate.sql())
		}
	}
	return sb.String()
}

// constraintDefSQL renders a table-level constraint clause, shared by
// CreateTable's inline form and AddConstraint's ALTER TABLE form.
func constraintDefSQL(b Backend, c Constraint) string {
	var sb strings.Builder
	switch c.Kind {
	case ConstraintUnique:
		sb.WriteString("CONSTRAINT ")
		sb.WriteString(b.Quote(c.Name))
		sb.WriteString(" UNIQUE (")
		sb.WriteString(quoteJoin(b, c.Columns))
		sb.WriteByte(')')
	case ConstraintCheck:
		sb.WriteString("CONSTRAINT ")
		sb.WriteString(b.Quote(c.Name))
		sb.WriteString(" CHECK (")
		sb.WriteString(c.Expression)
		sb.WriteByte(')')
	case ConstraintForeignKey:
		sb.WriteString("CONSTRAINT ")
		sb.WriteString(b.Quote(c.Name))
		sb.WriteString(" FOREIGN KEY (")
		sb.WriteString(quoteJoin(b, c.Columns))
		sb.WriteString(") REFERENCES ")
		sb.WriteString(b.Quote(c.RefTable))
		sb.WriteByte('(')
		sb.WriteString(quoteJoin(b, c.RefColumns))
		sb.WriteByte(')')
		if c.OnDelete != NoAction {
			sb.WriteString(" ON DELETE ")
			sb.WriteString(c.OnDelete.sql())
		}
		if c.OnUpdate != NoAction {
			sb.WriteString(" ON UPDATE ")
			sb.WriteString(c.OnUpdate.sql())
		}
	}
	return sb.String()
}

func quoteJoin(b Backend, names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = b.Quote(n)
	}
	return strings.Join(quoted, ", ")
}

// countPrimaryKeys reports how many fields in a CreateTable set the
// primary-key flag, to decide inline vs table-level PRIMARY KEY clause.
func countPrimaryKeys(fields []Field) int {
	n := 0
	for _, f := range fields {
		if f.PrimaryKey {
			n++
		}
	}
	return n
}

func primaryKeyColumns(fields []Field) []string {
	var cols []string
	for _, f := range fields {
		if f.PrimaryKey {
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// createTableSQL renders a full CREATE TABLE statement, shared by
// CreateTableOp.ForwardSQL and the SQLite recreate-table fallback.
func createTableSQL(b Backend, table string, fields []Field, constraints []Constraint) string {
	pkCount := countPrimaryKeys(fields)
	singlePK := pkCount == 1

	defs := make([]string, 0, len(fields)+len(constraints)+1)
	for _, f := range fields {
		defs = append(defs, columnDefSQL(b, f, singlePK))
	}
	if pkCount > 1 {
		defs = append(defs, "PRIMARY KEY ("+quoteJoin(b, primaryKeyColumns(fields))+")")
	}
	for _, c := range constraints {
		defs = append(defs, constraintDefSQL(b, c))
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(b.Quote(table))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(defs, ", "))
	sb.WriteByte(')')
	return sb.String()
}
