package driver

import (
	"fmt"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/drivers/mysql"
)

// MySQL wraps a squealx connection to a MySQL database. MySQL commits DDL
// implicitly, so Begin/Commit/Rollback are provided for interface
// symmetry but MigrateForwardWithTransactions never calls them here (the
// MySQL backend's TransactionalDDL capability is false).
type MySQL struct {
	db *squealx.DB
	tx *squealx.Tx
}

func OpenMySQL(dsn string) (*MySQL, error) {
	db, err := mysql.Open(dsn, "mysql")
	if err != nil {
		return nil, fmt.Errorf("driver: open mysql: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("driver: ping mysql: %w", err)
	}
	m := &MySQL{db: db}
	if err := m.ensureTable(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MySQL) DB() *squealx.DB { return m.db }

func (m *MySQL) ensureTable() error {
	if _, err := m.db.Exec(createMigrationsTableSQL); err != nil {
		return fmt.Errorf("driver: create migrations table: %w", err)
	}
	return nil
}

func (m *MySQL) Exec(sql string) error {
	var err error
	if m.tx != nil {
		_, err = m.tx.Exec(sql)
	} else {
		_, err = m.db.Exec(sql)
	}
	if err != nil {
		return fmt.Errorf("driver: exec: %w", err)
	}
	return nil
}

func (m *MySQL) Begin() error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("driver: begin: %w", err)
	}
	m.tx = tx
	return nil
}

func (m *MySQL) Commit() error {
	if m.tx == nil {
		return nil
	}
	err := m.tx.Commit()
	m.tx = nil
	if err != nil {
		return fmt.Errorf("driver: commit: %w", err)
	}
	return nil
}

func (m *MySQL) Rollback() error {
	if m.tx == nil {
		return nil
	}
	err := m.tx.Rollback()
	m.tx = nil
	if err != nil {
		return fmt.Errorf("driver: rollback: %w", err)
	}
	return nil
}

func (m *MySQL) AppliedMigrations() ([]string, error) {
	return queryAppliedNames(m.db)
}

func (m *MySQL) MarkApplied(name string) error {
	_, err := m.db.Exec("INSERT IGNORE INTO "+migrationsTable+" (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("driver: mark applied: %w", err)
	}
	return nil
}

func (m *MySQL) MarkUnapplied(name string) error {
	_, err := m.db.Exec("DELETE FROM "+migrationsTable+" WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("driver: mark unapplied: %w", err)
	}
	return nil
}
