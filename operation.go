package cetane

// Operation is the closed set of schema-change units: CreateTable,
// DropTable, RenameTable, AddField, RemoveField, RenameField, AlterField,
// AddIndex, RemoveIndex, AddConstraint, RemoveConstraint, RunSql. The
// unexported isOperation marker keeps the set closed to this package, so
// exhaustive switches elsewhere can rely on it never growing from outside.
type Operation interface {
	// ForwardSQL lowers the operation to one or more DDL statements for the
	// given backend, consulting and updating ctx as needed for backends
	// that require tracking a table's current shape (SQLite recreate, MySQL
	// MODIFY COLUMN).
	ForwardSQL(ctx *GenContext, b Backend) ([]string, error)

	// Reverse returns the operation's inverse and true when it can be
	// derived automatically or was supplied by the user via a With*
	// builder; otherwise it returns (nil, false).
	Reverse() (Operation, bool)

	// describe renders a deterministic, human-irrelevant string used only
	// as checksum input; it is not meant for display.
	describe() string

	isOperation()
}
