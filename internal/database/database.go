// Package database manages the SQLite handle backing the export command.
package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a SQLite connection and remembers whether it is backed by a
// temporary file that should be removed on Close.
type DB struct {
	*sql.DB
	Path   string
	IsTemp bool
}

// Open opens the SQLite database at dbPath. An empty path opens a
// temporary database that is deleted when the handle is closed.
func Open(dbPath string) (*DB, error) {
	path := dbPath
	isTemp := false

	if path == "" {
		tmpFile, err := os.CreateTemp("", "csvguard-*.db")
		if err != nil {
			return nil, fmt.Errorf("failed to create temporary database: %w", err)
		}
		tmpFile.Close()
		path = tmpFile.Name()
		isTemp = true
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		if isTemp {
			os.Remove(path)
		}
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{DB: db, Path: path, IsTemp: isTemp}, nil
}

// OpenExisting opens dbPath and fails when no database file is there; the
// export command reads from databases it did not create.
func OpenExisting(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	return Open(dbPath)
}

// Close closes the connection and removes the backing file when it was
// temporary.
func (d *DB) Close() error {
	if err := d.DB.Close(); err != nil {
		return err
	}
	if d.IsTemp {
		if err := os.Remove(d.Path); err != nil {
			return fmt.Errorf("failed to remove temporary database %s: %w", d.Path, err)
		}
	}
	return nil
}
