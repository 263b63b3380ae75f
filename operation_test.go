package cetane

import (
	"strings"
	"testing"
)

func TestCreateTableForwardAndReverseSQLite(t *testing.T) {
	b := SQLiteBackend{}
	ctx := NewGenContext(nil)

	op := NewCreateTable("users", []Field{
		*NewField("id", Serial).PrimaryKeyFlag(),
		*NewField("email", Text).NotNull().UniqueFlag(),
	})

	stmts, err := op.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	want := `CREATE TABLE "users" ("id" INTEGER PRIMARY KEY, "email" TEXT NOT NULL UNIQUE)`
	if stmts[0] != want {
		t.Fatalf("got:  %s\nwant: %s", stmts[0], want)
	}

	reverse, ok := op.Reverse()
	if !ok {
		t.Fatalf("CreateTable must always be reversible")
	}
	revStmts, err := reverse.ForwardSQL(NewGenContext(nil), b)
	if err != nil {
		t.Fatalf("unexpected reverse error: %v", err)
	}
	if revStmts[0] != `DROP TABLE "users"` {
		t.Fatalf("got %s", revStmts[0])
	}
}

func TestAddFieldRemoveFieldRoundTrip(t *testing.T) {
	b := PostgresBackend{}
	ctx := NewGenContext(nil)
	ctx.createTable("users", nil, nil)

	add := NewAddField("users", NewField("name", VarChar(255)).NotNull())
	stmts, err := add.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stmts[0], `ADD COLUMN "name" VARCHAR(255) NOT NULL`) {
		t.Fatalf("unexpected SQL: %s", stmts[0])
	}

	reverse, ok := add.Reverse()
	if !ok {
		t.Fatalf("AddField must always be reversible")
	}
	removeOp, ok := reverse.(*RemoveFieldOp)
	if !ok {
		t.Fatalf("expected *RemoveFieldOp, got %T", reverse)
	}
	revStmts, err := removeOp.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revStmts[0] != `ALTER TABLE "users" DROP COLUMN "name"` {
		t.Fatalf("got %s", revStmts[0])
	}

	// Removing without a definition yields an irreversible operation.
	bare := NewRemoveField("users", "name")
	if _, ok := bare.Reverse(); ok {
		t.Fatalf("RemoveField without WithDefinition must not be reversible")
	}
}

func TestAlterFieldPostgresReverse(t *testing.T) {
	b := PostgresBackend{}
	ctx := NewGenContext(nil)
	ctx.createTable("users", []Field{*NewField("name", VarChar(255)).NotNull()}, nil)

	forward := NewFieldChanges().SetType(Text).SetNullable(true)
	reverseChanges := NewFieldChanges().SetType(VarChar(255)).SetNullable(false)
	op := NewAlterField("users", "name", forward).WithReverse(reverseChanges)

	stmts, err := op.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	joined := strings.Join(stmts, " | ")
	if !strings.Contains(joined, `ALTER COLUMN "name" TYPE TEXT`) {
		t.Fatalf("expected type change statement, got %s", joined)
	}
	if !strings.Contains(joined, `DROP NOT NULL`) {
		t.Fatalf("expected DROP NOT NULL statement, got %s", joined)
	}

	reverse, ok := op.Reverse()
	if !ok {
		t.Fatalf("expected reverse since WithReverse was supplied")
	}
	revStmts, err := reverse.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	revJoined := strings.Join(revStmts, " | ")
	if !strings.Contains(revJoined, `TYPE VARCHAR(255)`) || !strings.Contains(revJoined, `SET NOT NULL`) {
		t.Fatalf("unexpected reverse SQL: %s", revJoined)
	}
}

func TestAlterFieldWithoutReverseIsNotReversible(t *testing.T) {
	op := NewAlterField("users", "name", NewFieldChanges().SetNullable(true))
	if _, ok := op.Reverse(); ok {
		t.Fatalf("AlterField without WithReverse must not be reversible")
	}
}

func TestAlterFieldSQLiteRecreatesTable(t *testing.T) {
	b := SQLiteBackend{}
	ctx := NewGenContext(nil)
	ctx.createTable("users", []Field{
		*NewField("id", Serial),
		*NewField("name", VarChar(255)).NotNull(),
	}, nil)

	op := NewAlterField("users", "name", NewFieldChanges().SetType(Text))
	stmts, err := op.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	joined := strings.Join(stmts, " | ")
	for _, want := range []string{"PRAGMA foreign_keys=OFF", "RENAME TO", "CREATE TABLE", "INSERT INTO", "DROP TABLE", "PRAGMA foreign_keys=ON"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected recreate-table statements to contain %q, got: %s", want, joined)
		}
	}
}

func TestRunSQLPortableNoEntryIsNoop(t *testing.T) {
	op := Portable().ForBackend(NamePostgres, "CREATE EXTENSION foo").ForBackend(NameSQLite, "SELECT 1")
	ctx := NewGenContext(nil)

	stmts, err := op.ForwardSQL(ctx, SQLiteBackend{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 1 || stmts[0] != "SELECT 1" {
		t.Fatalf("expected exactly SELECT 1, got %v", stmts)
	}

	stmts, err = op.ForwardSQL(ctx, MySQLBackend{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 0 {
		t.Fatalf("expected a no-op for an unmapped backend, got %v", stmts)
	}
}

func TestAddIndexDropsFilterOnUnsupportedBackend(t *testing.T) {
	idx := NewIndex("idx_active_users", "users", Col("id")).Where("active = true")
	op := NewAddIndex(idx)
	ctx := NewGenContext(nil)

	stmts, err := op.ForwardSQL(ctx, MySQLBackend{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stmts[0], "WHERE") {
		t.Fatalf("expected filter to be dropped for mysql, got %s", stmts[0])
	}

	stmts, err = op.ForwardSQL(ctx, PostgresBackend{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stmts[0], "WHERE active = true") {
		t.Fatalf("expected filter to be kept for postgres, got %s", stmts[0])
	}
}

func TestAddConstraintRemoveConstraintRoundTrip(t *testing.T) {
	b := PostgresBackend{}
	ctx := NewGenContext(nil)
	c := ForeignKeyConstraint("fk_posts_author", []string{"author_id"}, "users", []string{"id"}).WithOnDelete(Cascade)
	add := NewAddConstraint("posts", c)

	stmts, err := add.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stmts[0], "FOREIGN KEY") || !strings.Contains(stmts[0], "ON DELETE CASCADE") {
		t.Fatalf("unexpected SQL: %s", stmts[0])
	}

	reverse, ok := add.Reverse()
	if !ok {
		t.Fatalf("AddConstraint must always be reversible")
	}
	revStmts, err := reverse.ForwardSQL(ctx, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revStmts[0] != `ALTER TABLE "posts" DROP CONSTRAINT "fk_posts_author"` {
		t.Fatalf("got %s", revStmts[0])
	}
}
