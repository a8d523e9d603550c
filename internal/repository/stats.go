package repository

import (
	"context"
	"fmt"

	"github.com/forgo/holocron/api/internal/database"
)

// StatsRepository reports row counts for the admin tooling
type StatsRepository struct {
	db database.Database
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db database.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// TableCount is the number of rows in one table
type TableCount struct {
	Table string `json:"table" yaml:"table"`
	Rows  int64  `json:"rows" yaml:"rows"`
}

// Counts returns the row count of every table, in schema order
func (r *StatsRepository) Counts(ctx context.Context) ([]TableCount, error) {
	counts := make([]TableCount, 0, len(database.Tables))
	for _, table := range database.Tables {
		var n int64
		// table names come from database.Tables, never from input
		if err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts = append(counts, TableCount{Table: table, Rows: n})
	}
	return counts, nil
}
