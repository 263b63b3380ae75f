package cetane

// tableShape is the generator's working knowledge of one table's current
// column list, used by AlterField: SQLite's recreate-table fallback (when
// the backend can't ALTER COLUMN TYPE in place) and MySQL's MODIFY COLUMN,
// which restates the full column definition.
type tableShape struct {
	name        string
	fields      []Field
	constraints []Constraint
}

func (s *tableShape) columnNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// GenContext tracks table shapes across the operations of a single
// migration run, scoped to one Migrator invocation rather than shared
// global state. Operations update it as they are lowered, in declared
// order.
type GenContext struct {
	tables map[string]*tableShape
	logger Logger
}

// NewGenContext creates an empty, per-run table tracker. logger may be nil.
func NewGenContext(logger Logger) *GenContext {
	return &GenContext{tables: make(map[string]*tableShape), logger: logger}
}

func (c *GenContext) warnf(format string, args ...any) {
	warnf(c.logger, format, args...)
}

func (c *GenContext) createTable(name string, fields []Field, constraints []Constraint) {
	c.tables[name] = &tableShape{name: name, fields: cloneFields(fields), constraints: cloneConstraints(constraints)}
}

func (c *GenContext) dropTable(name string) {
	delete(c.tables, name)
}

func (c *GenContext) renameTable(oldName, newName string) {
	if t, ok := c.tables[oldName]; ok {
		delete(c.tables, oldName)
		t.name = newName
		c.tables[newName] = t
	}
}

func (c *GenContext) addField(table string, f Field) {
	if t, ok := c.tables[table]; ok {
		t.fields = append(t.fields, f.clone())
	}
}

func (c *GenContext) removeField(table, column string) {
	t, ok := c.tables[table]
	if !ok {
		return
	}
	out := t.fields[:0]
	for _, f := range t.fields {
		if f.Name != column {
			out = append(out, f)
		}
	}
	t.fields = out
}

func (c *GenContext) renameField(table, from, to string) {
	t, ok := c.tables[table]
	if !ok {
		return
	}
	for i := range t.fields {
		if t.fields[i].Name == from {
			t.fields[i].Name = to
		}
	}
}

func (c *GenContext) alterField(table, column string, changes *FieldChanges) {
	t, ok := c.tables[table]
	if !ok {
		return
	}
	for i := range t.fields {
		if t.fields[i].Name != column {
			continue
		}
		if changes.Type != nil {
			t.fields[i].Type = *changes.Type
		}
		if changes.Nullable != nil {
			t.fields[i].Nullable = *changes.Nullable
		}
		if changes.Default != nil {
			t.fields[i].Default = *changes.Default
			t.fields[i].HasDefault = *changes.Default != ""
		}
		if changes.Unique != nil {
			t.fields[i].Unique = *changes.Unique
		}
		if changes.PrimaryKey != nil {
			t.fields[i].PrimaryKey = *changes.PrimaryKey
		}
	}
}

// shapeOf returns the tracked shape for a table, or nil if the table was
// never observed via CreateTable in this run (e.g. migrating against a
// pre-existing table outside the current batch).
func (c *GenContext) shapeOf(table string) *tableShape {
	return c.tables[table]
}
