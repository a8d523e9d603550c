package repository

import (
	"context"
	"errors"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
)

// PlanetRepository handles planet data access
type PlanetRepository struct {
	db database.Database
}

// NewPlanetRepository creates a new planet repository
func NewPlanetRepository(db database.Database) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// List retrieves every planet
func (r *PlanetRepository) List(ctx context.Context) ([]*model.Planet, error) {
	planets := []*model.Planet{}
	if err := r.db.Select(ctx, &planets, `SELECT id, name FROM planets`); err != nil {
		return nil, err
	}
	return planets, nil
}

// GetByID retrieves a planet by ID
func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*model.Planet, error) {
	var planet model.Planet
	err := r.db.Get(ctx, &planet, `SELECT id, name FROM planets WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &planet, nil
}

// Create inserts a new planet and sets its ID
func (r *PlanetRepository) Create(ctx context.Context, planet *model.Planet) error {
	id, err := r.db.Insert(ctx, `INSERT INTO planets (name) VALUES (?) RETURNING id`, planet.Name)
	if err != nil {
		return err
	}
	planet.ID = id
	return nil
}
