package driver

import (
	"fmt"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/drivers/sqlite"
)

// SQLite wraps a squealx connection to a SQLite database.
type SQLite struct {
	db *squealx.DB
	tx *squealx.Tx
}

func OpenSQLite(dbPath string) (*SQLite, error) {
	db, err := sqlite.Open(dbPath, "sqlite3")
	if err != nil {
		return nil, fmt.Errorf("driver: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("driver: ping sqlite: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.ensureTable(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLite) DB() *squealx.DB { return s.db }

func (s *SQLite) ensureTable() error {
	if _, err := s.db.Exec(createMigrationsTableSQL); err != nil {
		return fmt.Errorf("driver: create migrations table: %w", err)
	}
	return nil
}

func (s *SQLite) Exec(sql string) error {
	var err error
	if s.tx != nil {
		_, err = s.tx.Exec(sql)
	} else {
		_, err = s.db.Exec(sql)
	}
	if err != nil {
		return fmt.Errorf("driver: exec: %w", err)
	}
	return nil
}

func (s *SQLite) Begin() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("driver: begin: %w", err)
	}
	s.tx = tx
	return nil
}

func (s *SQLite) Commit() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("driver: commit: %w", err)
	}
	return nil
}

func (s *SQLite) Rollback() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("driver: rollback: %w", err)
	}
	return nil
}

func (s *SQLite) AppliedMigrations() ([]string, error) {
	return queryAppliedNames(s.db)
}

func (s *SQLite) MarkApplied(name string) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO "+migrationsTable+" (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("driver: mark applied: %w", err)
	}
	return nil
}

func (s *SQLite) MarkUnapplied(name string) error {
	_, err := s.db.Exec("DELETE FROM "+migrationsTable+" WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("driver: mark unapplied: %w", err)
	}
	return nil
}
