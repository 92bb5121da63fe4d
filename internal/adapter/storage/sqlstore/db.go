package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Supported database/sql driver names
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DB wraps the database connection together with the driver it was opened with
type DB struct {
	*sql.DB
	driver string
}

// NewDB opens and pings a database connection
// dsn is a file path (or ":memory:") for sqlite3 and a connection string for postgres,
// e.g. "host=localhost port=5432 user=postgres password=postgres dbname=assetly sslmode=disable"
func NewDB(ctx context.Context, driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if driver == DriverSQLite {
		// A single connection keeps ":memory:" databases alive and serializes writers
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

// Driver returns the driver name the connection was opened with
func (db *DB) Driver() string {
	return db.driver
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// placeholder returns the n-th (1-based) bind parameter for the driver
func (db *DB) placeholder(n int) string {
	if db.driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
