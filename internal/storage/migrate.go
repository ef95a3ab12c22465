package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var schemaFS embed.FS

// MigrateUp applies every embedded schema migration in lexical order. The
// statements carry IF NOT EXISTS guards, so running it on an already
// migrated snapshot database is harmless.
func MigrateUp(db *sql.DB) error {
	return applyMigrations(db, ".up.sql", false)
}

// MigrateDown tears the schema back down, newest migration first.
func MigrateDown(db *sql.DB) error {
	return applyMigrations(db, ".down.sql", true)
}

func applyMigrations(db *sql.DB, suffix string, newestFirst bool) error {
	names, err := fs.Glob(schemaFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("storage: glob migrations: %w", err)
	}
	sort.Strings(names)
	if newestFirst {
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
	}
	for _, name := range names {
		stmt, readErr := schemaFS.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("storage: read migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(stmt)); execErr != nil {
			return fmt.Errorf("storage: apply migration %s: %w", name, execErr)
		}
	}
	return nil
}
