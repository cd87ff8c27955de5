package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"drogueria/m/internal/migrations"
)

// DefaultURL addresses drogueria.db in the working directory.
const DefaultURL = "sqlite:///drogueria.db"

const driverName = "sqlite"

// ErrStorageInitialization matches every *StorageInitializationError.
var ErrStorageInitialization = errors.New("storage initialization failed")

// StorageInitializationError reports that the backing store could not be
// opened or its tables could not be created.
type StorageInitializationError struct {
	Path string
	Err  error
}

func (e *StorageInitializationError) Error() string {
	return fmt.Sprintf("initialize storage %q: %v", e.Path, e.Err)
}

func (e *StorageInitializationError) Unwrap() error { return e.Err }

func (e *StorageInitializationError) Is(target error) bool {
	return target == ErrStorageInitialization
}

// ParseURL extracts the file path from a connection string of the form
// sqlite:///relative.db or sqlite:////absolute/path.db.
func ParseURL(raw string) (string, error) {
	engine, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return "", fmt.Errorf("malformed database url %q", raw)
	}
	if engine != driverName {
		return "", fmt.Errorf("unsupported database engine %q", engine)
	}
	if !strings.HasPrefix(rest, "/") {
		return "", fmt.Errorf("database url %q must have an empty host", raw)
	}
	path := rest[1:]
	if strings.ContainsAny(path, "?#") {
		return "", fmt.Errorf("database url %q must not carry query parameters", raw)
	}
	if path == "" {
		return "", fmt.Errorf("database url %q has no file path", raw)
	}
	return path, nil
}

// Connect opens the SQLite file at path, creating it if needed. Foreign keys
// are enforced on every connection. The returned handle may be shared between
// goroutines.
func Connect(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Initialize opens the store addressed by url and creates any missing tables.
// Calling it on an already initialized store changes nothing.
func Initialize(ctx context.Context, url string) (*sqlx.DB, error) {
	path, err := ParseURL(url)
	if err != nil {
		return nil, &StorageInitializationError{Path: url, Err: err}
	}
	db, err := Connect(ctx, path)
	if err != nil {
		return nil, &StorageInitializationError{Path: path, Err: err}
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, &StorageInitializationError{Path: path, Err: err}
	}
	return db, nil
}

// ForeignKeysEnabled reports whether the connection enforces foreign keys.
func ForeignKeysEnabled(ctx context.Context, db *sqlx.DB) (bool, error) {
	var on bool
	if err := db.GetContext(ctx, &on, `PRAGMA foreign_keys`); err != nil {
		return false, err
	}
	return on, nil
}
