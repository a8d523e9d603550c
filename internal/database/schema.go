package database

import (
	"context"
	"fmt"
)

// Table names
const (
	TableUsers              = "users"
	TableCharacters         = "characters"
	TablePlanets            = "planets"
	TableFavoriteCharacters = "favorite_characters"
	TableFavoritePlanets    = "favorite_planets"
)

// Tables lists every table in creation order (referenced tables first)
var Tables = []string{
	TableUsers,
	TableCharacters,
	TablePlanets,
	TableFavoriteCharacters,
	TableFavoritePlanets,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		email     VARCHAR(120) NOT NULL UNIQUE,
		password  VARCHAR(80) NOT NULL,
		is_active BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS characters (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name   VARCHAR(250) NOT NULL,
		gender VARCHAR(250) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS planets (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(250) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS favorite_characters (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id      INTEGER NOT NULL REFERENCES users(id),
		character_id INTEGER NOT NULL REFERENCES characters(id)
	)`,
	`CREATE TABLE IF NOT EXISTS favorite_planets (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id   INTEGER NOT NULL REFERENCES users(id),
		planet_id INTEGER NOT NULL REFERENCES planets(id)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id        BIGSERIAL PRIMARY KEY,
		email     VARCHAR(120) NOT NULL UNIQUE,
		password  VARCHAR(80) NOT NULL,
		is_active BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS characters (
		id     BIGSERIAL PRIMARY KEY,
		name   VARCHAR(250) NOT NULL,
		gender VARCHAR(250) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS planets (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(250) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS favorite_characters (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id),
		character_id BIGINT NOT NULL REFERENCES characters(id)
	)`,
	`CREATE TABLE IF NOT EXISTS favorite_planets (
		id        BIGSERIAL PRIMARY KEY,
		user_id   BIGINT NOT NULL REFERENCES users(id),
		planet_id BIGINT NOT NULL REFERENCES planets(id)
	)`,
}

// Schema returns the CREATE TABLE statements for the given driver
func Schema(driver string) ([]string, error) {
	switch driver {
	case DriverSQLite:
		return sqliteSchema, nil
	case DriverPostgres:
		return postgresSchema, nil
	default:
		return nil, fmt.Errorf("%w: no schema for driver %q", ErrQuery, driver)
	}
}

// EnsureSchema creates any missing tables. Existing tables are left as they are.
func EnsureSchema(ctx context.Context, db Database) error {
	stmts, err := Schema(db.Driver())
	if err != nil {
		return err
	}
	for i, stmt := range stmts {
		if _, err := db.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("create table %s: %w", Tables[i], err)
		}
	}
	return nil
}
