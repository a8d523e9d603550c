package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

const defaultQueryTimeout = 5 * time.Second

// SQL implements the Database interface on top of database/sql via sqlx
type SQL struct {
	db     *sqlx.DB
	config Config
}

// NewSQL creates a new SQL instance. Call Connect before use.
func NewSQL(cfg Config) *SQL {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = defaultQueryTimeout
	}
	return &SQL{config: cfg}
}

// NewSQLFromDB wraps an already opened *sql.DB. driver selects the
// placeholder style and error classification.
func NewSQLFromDB(db *sql.DB, driver string, timeout time.Duration) *SQL {
	s := NewSQL(Config{Driver: driver, QueryTimeout: timeout})
	s.db = sqlx.NewDb(db, driver)
	return s
}

// Connect opens the connection pool and verifies it
func (s *SQL) Connect(ctx context.Context) error {
	dsn := s.config.DSN
	switch s.config.Driver {
	case DriverSQLite:
		dsn = sqliteDSN(dsn)
	case DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrConnection, s.config.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, s.config.Driver, dsn)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if s.config.Driver == DriverSQLite {
		// in-memory databases live exactly as long as their connection
		db.SetMaxOpenConns(1)
	}

	s.db = db
	return nil
}

// sqliteDSN enables foreign keys and a busy timeout on every pooled connection
func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	params := []string{"_foreign_keys=1", "_busy_timeout=5000"}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// Close closes the connection pool
func (s *SQL) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks the database connection
func (s *SQL) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Driver returns the configured driver name
func (s *SQL) Driver() string {
	return s.config.Driver
}

// Select scans every row returned by query into dest
func (s *SQL) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if s.db == nil {
		return ErrConnection
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	if err := s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...); err != nil {
		return classifyError(err)
	}
	return nil
}

// Get scans a single row into dest
func (s *SQL) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if s.db == nil {
		return ErrConnection
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	if err := s.db.GetContext(ctx, dest, s.db.Rebind(query), args...); err != nil {
		return classifyError(err)
	}
	return nil
}

// Insert runs an INSERT ... RETURNING id statement
func (s *SQL) Insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if s.db == nil {
		return 0, ErrConnection
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	var id int64
	if err := s.db.QueryRowxContext(ctx, s.db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, classifyError(err)
	}
	return id, nil
}

// Execute runs a mutation and returns the number of affected rows
func (s *SQL) Execute(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if s.db == nil {
		return 0, ErrConnection
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, classifyError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classifyError(err)
	}
	return n, nil
}

// classifyError maps driver errors onto the package sentinels
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		if liteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		if liteErr.Code == sqlite3.ErrCantOpen || liteErr.Code == sqlite3.ErrNotADB {
			return fmt.Errorf("%w: %v", ErrConnection, err)
		}
	}

	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		case "foreign_key_violation", "not_null_violation", "check_violation":
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		if pgErr.Code.Class() == "08" {
			return fmt.Errorf("%w: %v", ErrConnection, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrQuery, err)
}
