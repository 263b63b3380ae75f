package cetane

// FieldKind is the closed set of column types cetane knows how to lower to
// SQL, typed instead of stringly-typed. Every backend's MapType maps a
// value outside this set to TEXT.
type FieldKind int

const (
	KindSerial FieldKind = iota
	KindBigSerial
	KindInteger
	KindBigInt
	KindSmallInt
	KindText
	KindVarChar
	KindBoolean
	KindTimestamp
	KindTimestampTz
	KindDate
	KindTime
	KindUUID
	KindJSON
	KindJSONB
	KindBinary
	KindReal
	KindDoublePrecision
	KindDecimal
)

// FieldType describes a column's data type. VarChar and Decimal carry extra
// parameters; all other kinds are zero-argument.
type FieldType struct {
	Kind             FieldKind
	VarCharLen       uint32
	DecimalPrecision uint8
	DecimalScale     uint8
}

var (
	Serial          = FieldType{Kind: KindSerial}
	BigSerial       = FieldType{Kind: KindBigSerial}
	Integer         = FieldType{Kind: KindInteger}
	BigInt          = FieldType{Kind: KindBigInt}
	SmallInt        = FieldType{Kind: KindSmallInt}
	Text            = FieldType{Kind: KindText}
	Boolean         = FieldType{Kind: KindBoolean}
	Timestamp       = FieldType{Kind: KindTimestamp}
	TimestampTz     = FieldType{Kind: KindTimestampTz}
	Date            = FieldType{Kind: KindDate}
	Time            = FieldType{Kind: KindTime}
	UUID            = FieldType{Kind: KindUUID}
	JSON            = FieldType{Kind: KindJSON}
	JSONB           = FieldType{Kind: KindJSONB}
	Binary          = FieldType{Kind: KindBinary}
	Real            = FieldType{Kind: KindReal}
	DoublePrecision = FieldType{Kind: KindDoublePrecision}
)

// VarChar builds a bounded-length text type.
func VarChar(n uint32) FieldType {
	return FieldType{Kind: KindVarChar, VarCharLen: n}
}

// DecimalType builds a fixed-precision numeric type.
func DecimalType(precision, scale uint8) FieldType {
	return FieldType{Kind: KindDecimal, DecimalPrecision: precision, DecimalScale: scale}
}

// isIdentity reports whether the type implies integer identity and NOT NULL,
// per the Field invariant in the data model.
func (t FieldType) isIdentity() bool {
	return t.Kind == KindSerial || t.Kind == KindBigSerial
}

// ReferentialAction is the set of FK ON DELETE/ON UPDATE actions.
type ReferentialAction int

const (
	NoAction ReferentialAction = iota
	Restrict
	Cascade
	SetNull
	SetDefault
)

func (a ReferentialAction) sql() string {
	switch a {
	case Restrict:
		return "RESTRICT"
	case Cascade:
		return "CASCADE"
	case SetNull:
		return "SET NULL"
	case SetDefault:
		return "SET DEFAULT"
	default:
		return "NO ACTION"
	}
}

// ForeignKeyRef is a field-level FK target, e.g. `NewField("author_id",
// BigInt).References("users", "id")`.
type ForeignKeyRef struct {
	Table    string
	Column   string
	OnDelete ReferentialAction
	OnUpdate ReferentialAction
}

// Field is a declarative column attribute record. Construct with NewField
// and chain the builder methods; Field values are otherwise plain data with
// no behavior of their own.
type Field struct {
	Name       string
	Type       FieldType
	Nullable   bool
	Default    string
	HasDefault bool
	PrimaryKey bool
	Unique     bool
	FK         *ForeignKeyRef
}

// NewField creates a field. Nullable defaults to true, except for identity
// types (Serial, BigSerial) which are always NOT NULL. It does not set
// PrimaryKey: identity only implies not-null, not key membership — call
// PrimaryKeyFlag explicitly to designate a column as (part of) the primary
// key.
func NewField(name string, t FieldType) *Field {
	f := &Field{Name: name, Type: t, Nullable: true}
	if t.isIdentity() {
		f.Nullable = false
	}
	return f
}

func (f *Field) NotNull() *Field {
	f.Nullable = false
	return f
}

func (f *Field) Null() *Field {
	if f.Type.isIdentity() {
		return f
	}
	f.Nullable = true
	return f
}

func (f *Field) DefaultExpr(expr string) *Field {
	f.Default = expr
	f.HasDefault = true
	return f
}

func (f *Field) PrimaryKeyFlag() *Field {
	f.PrimaryKey = true
	f.Nullable = false
	return f
}

func (f *Field) UniqueFlag() *Field {
	f.Unique = true
	return f
}

func (f *Field) References(table, column string) *Field {
	f.FK = &ForeignKeyRef{Table: table, Column: column}
	return f
}

func (f *Field) OnDeleteAction(a ReferentialAction) *Field {
	if f.FK != nil {
		f.FK.OnDelete = a
	}
	return f
}

func (f *Field) OnUpdateAction(a ReferentialAction) *Field {
	if f.FK != nil {
		f.FK.OnUpdate = a
	}
	return f
}

func (f Field) clone() Field {
	cp := f
	if f.FK != nil {
		fk := *f.FK
		cp.FK = &fk
	}
	return cp
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.clone()
	}
	return out
}

// SortDirection is the ordering of an index column.
type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

func (d SortDirection) sql() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// IndexColumn is one column participating in an index, with its sort order.
type IndexColumn struct {
	Name      string
	Direction SortDirection
}

// Index is a declarative index definition. Filter is a raw SQL predicate,
// only ever emitted for backends with partial-index support (PostgreSQL).
type Index struct {
	Name    string
	Table   string
	Columns []IndexColumn
	Unique  bool
	Filter  string
}

func NewIndex(name, table string, columns ...IndexColumn) *Index {
	return &Index{Name: name, Table: table, Columns: columns}
}

func Col(name string) IndexColumn     { return IndexColumn{Name: name, Direction: Asc} }
func ColDesc(name string) IndexColumn { return IndexColumn{Name: name, Direction: Desc} }

func (i *Index) UniqueFlag() *Index {
	i.Unique = true
	return i
}

func (i *Index) Where(predicate string) *Index {
	i.Filter = predicate
	return i
}

func (i Index) clone() Index {
	cp := i
	cp.Columns = append([]IndexColumn(nil), i.Columns...)
	return cp
}

// ConstraintKind is the closed set of table-level constraint variants.
type ConstraintKind int

const (
	ConstraintUnique ConstraintKind = iota
	ConstraintCheck
	ConstraintForeignKey
)

// Constraint is a tagged table-level constraint: Unique, Check or
// ForeignKey, distinguished by Kind.
type Constraint struct {
	Kind       ConstraintKind
	Name       string
	Columns    []string
	Expression string
	RefTable   string
	RefColumns []string
	OnDelete   ReferentialAction
	OnUpdate   ReferentialAction
}

func UniqueConstraint(name string, columns ...string) Constraint {
	return Constraint{Kind: ConstraintUnique, Name: name, Columns: columns}
}

func CheckConstraint(name, expression string) Constraint {
	return Constraint{Kind: ConstraintCheck, Name: name, Expression: expression}
}

func ForeignKeyConstraint(name string, columns []string, refTable string, refColumns []string) Constraint {
	return Constraint{Kind: ConstraintForeignKey, Name: name, Columns: columns, RefTable: refTable, RefColumns: refColumns}
}

func (c Constraint) WithOnDelete(a ReferentialAction) Constraint {
	c.OnDelete = a
	return c
}

func (c Constraint) WithOnUpdate(a ReferentialAction) Constraint {
	c.OnUpdate = a
	return c
}

func cloneConstraints(cs []Constraint) []Constraint {
	if cs == nil {
		return nil
	}
	out := make([]Constraint, len(cs))
	for i, c := range cs {
		out[i] = c
		out[i].Columns = append([]string(nil), c.Columns...)
		out[i].RefColumns = append([]string(nil), c.RefColumns...)
	}
	return out
}

// FieldChanges is a partial update record used by AlterField. At least one
// of the optional fields must be set; NewFieldChanges().IsEmpty() is true
// until a setter is called.
type FieldChanges struct {
	Type       *FieldType
	Nullable   *bool
	Default    *string
	Unique     *bool
	PrimaryKey *bool
}

func NewFieldChanges() *FieldChanges {
	return &FieldChanges{}
}

func (c *FieldChanges) SetType(t FieldType) *FieldChanges {
	c.Type = &t
	return c
}

func (c *FieldChanges) SetNullable(nullable bool) *FieldChanges {
	c.Nullable = &nullable
	return c
}

func (c *FieldChanges) SetDefault(expr string) *FieldChanges {
	c.Default = &expr
	return c
}

func (c *FieldChanges) SetUnique(unique bool) *FieldChanges {
	c.Unique = &unique
	return c
}

func (c *FieldChanges) SetPrimaryKey(pk bool) *FieldChanges {
	c.PrimaryKey = &pk
	return c
}

func (c *FieldChanges) IsEmpty() bool {
	return c.Type == nil && c.Nullable == nil && c.Default == nil && c.Unique == nil && c.PrimaryKey == nil
}

func (c *FieldChanges) clone() *FieldChanges {
	if c == nil {
		return nil
	}
	cp := &FieldChanges{}
	if c.Type != nil {
		t := *c.Type
		cp.Type = &t
	}
	if c.Nullable != nil {
		v := *c.Nullable
		cp.Nullable = &v
	}
	if c.Default != nil {
		v := *c.Default
		cp.Default = &v
	}
	if c.Unique != nil {
		v := *c.Unique
		cp.Unique = &v
	}
	if c.PrimaryKey != nil {
		v := *c.PrimaryKey
		cp.PrimaryKey = &v
	}
	return cp
}
