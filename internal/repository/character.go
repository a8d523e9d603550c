package repository

import (
	"context"
	"errors"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
)

// CharacterRepository handles character data access
type CharacterRepository struct {
	db database.Database
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db database.Database) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// List retrieves every character
func (r *CharacterRepository) List(ctx context.Context) ([]*model.Character, error) {
	characters := []*model.Character{}
	if err := r.db.Select(ctx, &characters, `SELECT id, name, gender FROM characters`); err != nil {
		return nil, err
	}
	return characters, nil
}

// GetByID retrieves a character by ID
func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*model.Character, error) {
	var character model.Character
	err := r.db.Get(ctx, &character, `SELECT id, name, gender FROM characters WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &character, nil
}

// Create inserts a new character and sets its ID
func (r *CharacterRepository) Create(ctx context.Context, character *model.Character) error {
	id, err := r.db.Insert(ctx,
		`INSERT INTO characters (name, gender) VALUES (?, ?) RETURNING id`,
		character.Name, character.Gender,
	)
	if err != nil {
		return err
	}
	character.ID = id
	return nil
}
