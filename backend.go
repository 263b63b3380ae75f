package cetane

import "fmt"

// Name is a backend's case-sensitive identifier, used both for display and
// as the lookup key for RunSQLOp.Portable.
type Name string

const (
	NamePostgres Name = "postgres"
	NameMySQL    Name = "mysql"
	NameSQLite   Name = "sqlite"
)

// Capabilities records what DDL a backend can express directly. The
// generator consults these instead of hard-coding per-backend behavior
// inline, keeping one struct per dialect rather than branching on a
// string everywhere.
type Capabilities struct {
	TransactionalDDL bool
	PartialIndex     bool
	DropColumn       bool
	AlterColumnType  bool
	RenameColumn     bool
}

// Backend is a dialect descriptor: identifier quoting, FieldType → SQL type
// string mapping, and capability flags. There is one concrete
// implementation per supported dialect.
type Backend interface {
	Name() Name
	Quote(identifier string) string
	MapType(t FieldType) string
	Capabilities() Capabilities
}

// quoteWith applies a pair of quote characters around an identifier,
// doubling any embedded occurrence of the closing character per standard
// SQL identifier-quoting rules.
func quoteWith(identifier string, open, close byte) string {
	out := make([]byte, 0, len(identifier)+2)
	out = append(out, open)
	for i := 0; i < len(identifier); i++ {
		c := identifier[i]
		if c == close {
			out = append(out, close)
		}
		out = append(out, c)
	}
	out = append(out, close)
	return string(out)
}

func decimalSQL(precision, scale uint8) string {
	return fmt.Sprintf("DECIMAL(%d,%d)", precision, scale)
}

func varcharSQL(n uint32) string {
	return fmt.Sprintf("VARCHAR(%d)", n)
}
