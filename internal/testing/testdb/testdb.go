// Package testdb provides test database utilities.
//
// Every TestDB is a private in-memory SQLite database with the schema
// applied, so tests run real SQL without any external service.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//
//	    // Use tdb.DB for database operations
//	    n := tdb.Count("planets")
//	}
package testdb

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/forgo/holocron/api/internal/database"
)

// TestDB provides an isolated database environment for testing.
type TestDB struct {
	DB   *database.SQL
	Name string
	t    *testing.T
	once sync.Once
}

var (
	// counterMu protects the name counter
	counterMu sync.Mutex
	counter   int64
)

// uniqueName generates a unique in-memory database name for test isolation
func uniqueName() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New creates a new isolated test database with the schema applied.
// The database is closed automatically when the test finishes.
func New(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := uniqueName()
	db := database.NewSQL(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          "file:" + name + "?mode=memory&cache=shared",
		QueryTimeout: 5 * time.Second,
	})
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	tdb := &TestDB{DB: db, Name: name, t: t}
	t.Cleanup(tdb.Close)

	if err := database.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("testdb: failed to create schema: %v", err)
	}

	return tdb
}

// Close closes the database. The in-memory data is discarded.
func (tdb *TestDB) Close() {
	tdb.once.Do(func() {
		_ = tdb.DB.Close()
	})
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustExec executes a statement and fails the test on error.
func (tdb *TestDB) MustExec(query string, args ...interface{}) {
	tdb.t.Helper()

	if _, err := tdb.DB.Execute(tdb.Ctx(), query, args...); err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v\nquery: %s", err, query)
	}
}

// Count returns the number of rows in table.
func (tdb *TestDB) Count(table string) int64 {
	tdb.t.Helper()

	var n int64
	if err := tdb.DB.Get(tdb.Ctx(), &n, "SELECT COUNT(*) FROM "+table); err != nil {
		tdb.t.Fatalf("testdb: count %s failed: %v", table, err)
	}
	return n
}
