package cetane

import "testing"

func TestPostgresQuoting(t *testing.T) {
	b := PostgresBackend{}
	if got := b.Quote("users"); got != `"users"` {
		t.Fatalf("expected quoted users, got %s", got)
	}
}

func TestMySQLQuoting(t *testing.T) {
	b := MySQLBackend{}
	if got := b.Quote("users"); got != "`users`" {
		t.Fatalf("expected backtick-quoted users, got %s", got)
	}
}

func TestSQLiteQuoting(t *testing.T) {
	b := SQLiteBackend{}
	if got := b.Quote("users"); got != `"users"` {
		t.Fatalf("expected quoted users, got %s", got)
	}
}

func TestTypeMappingMatrix(t *testing.T) {
	cases := []struct {
		t        FieldType
		postgres string
		mysql    string
		sqlite   string
	}{
		{Serial, "SERIAL", "INT AUTO_INCREMENT", "INTEGER"},
		{BigInt, "BIGINT", "BIGINT", "INTEGER"},
		{Text, "TEXT", "TEXT", "TEXT"},
		{VarChar(32), "VARCHAR(32)", "VARCHAR(32)", "VARCHAR(32)"},
		{Boolean, "BOOLEAN", "TINYINT(1)", "BOOLEAN"},
		{UUID, "UUID", "CHAR(36)", "TEXT"},
		{JSONB, "JSONB", "JSON", "TEXT"},
		{Binary, "BYTEA", "BLOB", "BLOB"},
		{DecimalType(10, 2), "DECIMAL(10,2)", "DECIMAL(10,2)", "DECIMAL(10,2)"},
	}

	var pg PostgresBackend
	var mysql MySQLBackend
	var sqlite SQLiteBackend

	for _, c := range cases {
		if got := pg.MapType(c.t); got != c.postgres {
			t.Errorf("postgres MapType(%v) = %s, want %s", c.t, got, c.postgres)
		}
		if got := mysql.MapType(c.t); got != c.mysql {
			t.Errorf("mysql MapType(%v) = %s, want %s", c.t, got, c.mysql)
		}
		if got := sqlite.MapType(c.t); got != c.sqlite {
			t.Errorf("sqlite MapType(%v) = %s, want %s", c.t, got, c.sqlite)
		}
	}
}

func TestCapabilityFlags(t *testing.T) {
	pg := PostgresBackend{}.Capabilities()
	if !pg.TransactionalDDL || !pg.PartialIndex || !pg.AlterColumnType {
		t.Fatalf("postgres should support transactional DDL, partial index and alter column type, got %+v", pg)
	}

	my := MySQLBackend{}.Capabilities()
	if my.TransactionalDDL || my.PartialIndex {
		t.Fatalf("mysql should not support transactional DDL or partial index, got %+v", my)
	}

	sl := SQLiteBackend{}.Capabilities()
	if sl.AlterColumnType {
		t.Fatalf("sqlite should not support in-place alter column type, got %+v", sl)
	}
}
