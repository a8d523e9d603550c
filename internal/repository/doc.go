// Package repository implements the data access layer for the Holocron API.
//
// Each repository struct handles the rows of one table.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Every method issues exactly one statement, committed on its own
//   - GetByID returns (nil, nil) when the row does not exist
//   - Delete reports whether a row was removed
//
// # Query Patterns
//
//   - '?' placeholders, rebound per driver by the database package
//   - INSERT ... RETURNING id to read back store-assigned ids
//   - No ORDER BY on list queries: rows come back in store order
package repository
