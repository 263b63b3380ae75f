package driver

import (
	"fmt"

	"github.com/oarkflow/squealx"
)

const migrationsTable = "_cetane_migrations"

const createMigrationsTableSQL = `CREATE TABLE IF NOT EXISTS ` + migrationsTable + ` (
	name TEXT PRIMARY KEY,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// queryAppliedNames reads every applied migration name using squealx.DB's
// plain Query surface, shared by every backend's AppliedMigrations.
func queryAppliedNames(db *squealx.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM " + migrationsTable)
	if err != nil {
		return nil, fmt.Errorf("driver: query applied migrations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("driver: scan applied migration: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("driver: iterate applied migrations: %w", err)
	}
	return names, nil
}
