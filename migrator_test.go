package cetane

import (
	"reflect"
	"testing"
)

func collectingExecutor(out *[]string) Executor {
	return func(sql string) error {
		*out = append(*out, sql)
		return nil
	}
}

func TestMigrateForwardAndBackwardSQLite(t *testing.T) {
	r := NewRegistry()
	create := NewCreateTable("users", []Field{
		*NewField("id", Serial).PrimaryKeyFlag(),
		*NewField("email", Text).NotNull().UniqueFlag(),
	})
	mustRegister(t, r, NewMigration("0001", nil, create))

	state := NewInMemoryStateStore()
	m := NewMigrator(r, SQLiteBackend{}, state)

	var forward []string
	if err := m.MigrateForward(collectingExecutor(&forward)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{`CREATE TABLE "users" ("id" INTEGER PRIMARY KEY, "email" TEXT NOT NULL UNIQUE)`}
	if !reflect.DeepEqual(forward, want) {
		t.Fatalf("got %v, want %v", forward, want)
	}

	applied, err := state.AppliedMigrations()
	if err != nil || len(applied) != 1 || applied[0] != "0001" {
		t.Fatalf("expected 0001 applied, got %v, err %v", applied, err)
	}

	var backward []string
	if err := m.MigrateBackward(nil, collectingExecutor(&backward)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backward) != 1 || backward[0] != `DROP TABLE "users"` {
		t.Fatalf("got %v", backward)
	}

	applied, _ = state.AppliedMigrations()
	if len(applied) != 0 {
		t.Fatalf("expected nothing applied after rollback, got %v", applied)
	}
}

func TestMigrateForwardIsIdempotent(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, NewMigration("0001", nil, NewCreateTable("t", []Field{*NewField("id", Serial)})))

	state := NewInMemoryStateStore()
	m := NewMigrator(r, SQLiteBackend{}, state)

	var first []string
	if err := m.MigrateForward(collectingExecutor(&first)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) == 0 {
		t.Fatalf("expected statements on first run")
	}

	var second []string
	if err := m.MigrateForward(collectingExecutor(&second)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected zero statements on second run, got %v", second)
	}
}

func TestMigrateBackwardPartialByTarget(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, NewMigration("0001", nil, NewCreateTable("a", []Field{*NewField("id", Serial)})))
	mustRegister(t, r, NewMigration("0002", []string{"0001"}, NewCreateTable("b", []Field{*NewField("id", Serial)})))
	mustRegister(t, r, NewMigration("0003", []string{"0002"}, NewCreateTable("c", []Field{*NewField("id", Serial)})))

	state := NewInMemoryStateStore()
	m := NewMigrator(r, SQLiteBackend{}, state)

	var fwd []string
	if err := m.MigrateForward(collectingExecutor(&fwd)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target := "0001"
	var back []string
	if err := m.MigrateBackward(&target, collectingExecutor(&back)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{`DROP TABLE "c"`, `DROP TABLE "b"`}
	if !reflect.DeepEqual(back, want) {
		t.Fatalf("got %v, want %v", back, want)
	}

	applied, _ := state.AppliedMigrations()
	if len(applied) != 1 || applied[0] != "0001" {
		t.Fatalf("expected only 0001 to remain applied, got %v", applied)
	}
}

func TestMigrateBackwardRejectsIrreversible(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, NewMigration("0001", nil, NewRemoveField("t", "name")))

	state := NewInMemoryStateStore()
	if err := state.MarkApplied("0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewMigrator(r, SQLiteBackend{}, state)

	err := m.MigrateBackward(nil, func(string) error { return nil })
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != KindNotReversible {
		t.Fatalf("expected NotReversible error, got %v", err)
	}
}

func TestMigrateForwardWithTransactionsWrapsAtomicMigrations(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, NewMigration("0001", nil, NewCreateTable("t", []Field{*NewField("id", Serial)})))

	state := NewInMemoryStateStore()
	m := NewMigrator(r, PostgresBackend{}, state)

	var begins, commits, rollbacks int
	begin := func() error { begins++; return nil }
	commit := func() error { commits++; return nil }
	rollback := func() error { rollbacks++; return nil }

	var stmts []string
	err := m.MigrateForwardWithTransactions(collectingExecutor(&stmts), begin, commit, rollback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if begins != 1 || commits != 1 || rollbacks != 0 {
		t.Fatalf("expected one begin/commit and no rollback, got begins=%d commits=%d rollbacks=%d", begins, commits, rollbacks)
	}
}

func TestMigrateForwardWithTransactionsRollsBackOnExecutorError(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, NewMigration("0001", nil, NewCreateTable("t", []Field{*NewField("id", Serial)})))

	state := NewInMemoryStateStore()
	m := NewMigrator(r, PostgresBackend{}, state)

	var rollbacks int
	begin := func() error { return nil }
	commit := func() error { return nil }
	rollback := func() error { rollbacks++; return nil }

	boom := errFailingExec{}
	err := m.MigrateForwardWithTransactions(boom.exec, begin, commit, rollback)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if rollbacks != 1 {
		t.Fatalf("expected exactly one rollback, got %d", rollbacks)
	}
	applied, _ := state.AppliedMigrations()
	if len(applied) != 0 {
		t.Fatalf("migration must not be marked applied after a failed transaction, got %v", applied)
	}
}

type errFailingExec struct{}

func (e errFailingExec) exec(sql string) error {
	return &Error{Kind: KindExecutorError, Message: "boom"}
}
