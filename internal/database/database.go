package database

import (
	"context"
	"errors"
	"time"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate email).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConstraint indicates a foreign key, NOT NULL or CHECK violation.
	ErrConstraint = errors.New("constraint violation")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Supported drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Database defines the interface for database operations.
//
// Queries are written with '?' placeholders; implementations rebind them
// for the connected driver.
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error
	Driver() string

	// Select scans every row returned by query into dest, a pointer to a slice
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error

	// Get scans a single row into dest. Returns ErrNotFound when no row matches.
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error

	// Insert runs an INSERT ... RETURNING id statement and returns the new id
	Insert(ctx context.Context, query string, args ...interface{}) (int64, error)

	// Execute runs a mutation and returns the number of affected rows
	Execute(ctx context.Context, query string, args ...interface{}) (int64, error)
}

// Config holds database configuration
type Config struct {
	Driver       string
	DSN          string
	QueryTimeout time.Duration
}
