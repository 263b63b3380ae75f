// Package driver provides concrete, squealx-backed implementations of
// cetane's Executor and MigrationStateStore, one per supported backend.
// These are reference implementations for talking to a real database; the
// core cetane package stays free of any SQL driver dependency.
package driver

import (
	"fmt"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/drivers/postgres"
)

// Postgres wraps a squealx connection to a PostgreSQL database, serving
// both as a cetane.Executor (via Exec) and a cetane.MigrationStateStore.
type Postgres struct {
	db *squealx.DB
	tx *squealx.Tx
}

// OpenPostgres opens and pings a PostgreSQL connection, then ensures the
// migrations-tracking table exists.
func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := postgres.Open(dsn, "postgres")
	if err != nil {
		return nil, fmt.Errorf("driver: open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("driver: ping postgres: %w", err)
	}
	p := &Postgres{db: db}
	if err := p.ensureTable(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Postgres) DB() *squealx.DB { return p.db }

func (p *Postgres) ensureTable() error {
	_, err := p.db.Exec(createMigrationsTableSQL)
	if err != nil {
		return fmt.Errorf("driver: create migrations table: %w", err)
	}
	return nil
}

// Exec satisfies cetane.Executor as a method value: driver.Postgres.Exec.
// When a transaction is active (via Begin), statements run inside it.
func (p *Postgres) Exec(sql string) error {
	var err error
	if p.tx != nil {
		_, err = p.tx.Exec(sql)
	} else {
		_, err = p.db.Exec(sql)
	}
	if err != nil {
		return fmt.Errorf("driver: exec: %w", err)
	}
	return nil
}

// Begin, Commit and Rollback satisfy cetane.TxCallback as method values,
// for MigrateForwardWithTransactions. Postgres supports transactional DDL.
func (p *Postgres) Begin() error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("driver: begin: %w", err)
	}
	p.tx = tx
	return nil
}

func (p *Postgres) Commit() error {
	if p.tx == nil {
		return nil
	}
	err := p.tx.Commit()
	p.tx = nil
	if err != nil {
		return fmt.Errorf("driver: commit: %w", err)
	}
	return nil
}

func (p *Postgres) Rollback() error {
	if p.tx == nil {
		return nil
	}
	err := p.tx.Rollback()
	p.tx = nil
	if err != nil {
		return fmt.Errorf("driver: rollback: %w", err)
	}
	return nil
}

func (p *Postgres) AppliedMigrations() ([]string, error) {
	return queryAppliedNames(p.db)
}

func (p *Postgres) MarkApplied(name string) error {
	_, err := p.db.Exec("INSERT INTO "+migrationsTable+" (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
	if err != nil {
		return fmt.Errorf("driver: mark applied: %w", err)
	}
	return nil
}

func (p *Postgres) MarkUnapplied(name string) error {
	_, err := p.db.Exec("DELETE FROM "+migrationsTable+" WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("driver: mark unapplied: %w", err)
	}
	return nil
}
