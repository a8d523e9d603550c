// Package database provides the relational store behind the Holocron API.
//
// The Database interface hides the driver in use. SQL is the only
// implementation and runs on SQLite (default) or PostgreSQL through sqlx.
//
// # Interface Design
//
// The Database interface provides four statement methods:
//   - Select: scans many rows into a slice
//   - Get: scans one row, ErrNotFound when there is none
//   - Insert: runs INSERT ... RETURNING id and returns the new id
//   - Execute: runs UPDATE/DELETE and returns the affected row count
//
// Every statement is committed on its own. There are no multi-statement
// transactions in this package.
//
// # Placeholders
//
// Queries are written with '?' placeholders and rebound per driver, so the
// same repository code runs on both engines:
//
//	db.Get(ctx, &user, `SELECT id, email FROM users WHERE id = ?`, id)
//
// # Error Handling
//
// Driver errors are classified into package sentinels:
//   - ErrNotFound: no row matched
//   - ErrDuplicate: unique constraint violation
//   - ErrConstraint: foreign key / NOT NULL / CHECK violation
//   - ErrConnection: connection issues
//   - ErrQuery: anything else
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db := database.NewSQL(database.Config{Driver: database.DriverSQLite, DSN: "/tmp/test.db"})
//	if err := db.Connect(ctx); err != nil { ... }
//	defer db.Close()
//	if err := database.EnsureSchema(ctx, db); err != nil { ... }
package database
