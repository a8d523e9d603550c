package repository

import (
	"context"
	"errors"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
)

// FavoriteCharacterRepository handles favorite character rows
type FavoriteCharacterRepository struct {
	db database.Database
}

// NewFavoriteCharacterRepository creates a new favorite character repository
func NewFavoriteCharacterRepository(db database.Database) *FavoriteCharacterRepository {
	return &FavoriteCharacterRepository{db: db}
}

// GetByID retrieves a favorite character by its own ID
func (r *FavoriteCharacterRepository) GetByID(ctx context.Context, id int64) (*model.FavoriteCharacter, error) {
	var fav model.FavoriteCharacter
	err := r.db.Get(ctx, &fav, `SELECT id, user_id, character_id FROM favorite_characters WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fav, nil
}

// GetByUserID retrieves every favorite character of a user
func (r *FavoriteCharacterRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.FavoriteCharacter, error) {
	favs := []*model.FavoriteCharacter{}
	err := r.db.Select(ctx, &favs, `SELECT id, user_id, character_id FROM favorite_characters WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	return favs, nil
}

// Create inserts a new favorite character and sets its ID
func (r *FavoriteCharacterRepository) Create(ctx context.Context, fav *model.FavoriteCharacter) error {
	id, err := r.db.Insert(ctx,
		`INSERT INTO favorite_characters (user_id, character_id) VALUES (?, ?) RETURNING id`,
		fav.UserID, fav.CharacterID,
	)
	if err != nil {
		return err
	}
	fav.ID = id
	return nil
}

// Delete deletes a favorite character. Returns false if no row matched.
func (r *FavoriteCharacterRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Execute(ctx, `DELETE FROM favorite_characters WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FavoritePlanetRepository handles favorite planet rows
type FavoritePlanetRepository struct {
	db database.Database
}

// NewFavoritePlanetRepository creates a new favorite planet repository
func NewFavoritePlanetRepository(db database.Database) *FavoritePlanetRepository {
	return &FavoritePlanetRepository{db: db}
}

// GetByID retrieves a favorite planet by its own ID
func (r *FavoritePlanetRepository) GetByID(ctx context.Context, id int64) (*model.FavoritePlanet, error) {
	var fav model.FavoritePlanet
	err := r.db.Get(ctx, &fav, `SELECT id, user_id, planet_id FROM favorite_planets WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fav, nil
}

// GetByUserID retrieves every favorite planet of a user
func (r *FavoritePlanetRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.FavoritePlanet, error) {
	favs := []*model.FavoritePlanet{}
	err := r.db.Select(ctx, &favs, `SELECT id, user_id, planet_id FROM favorite_planets WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	return favs, nil
}

// Create inserts a new favorite planet and sets its ID
func (r *FavoritePlanetRepository) Create(ctx context.Context, fav *model.FavoritePlanet) error {
	id, err := r.db.Insert(ctx,
		`INSERT INTO favorite_planets (user_id, planet_id) VALUES (?, ?) RETURNING id`,
		fav.UserID, fav.PlanetID,
	)
	if err != nil {
		return err
	}
	fav.ID = id
	return nil
}

// Delete deletes a favorite planet. Returns false if no row matched.
func (r *FavoritePlanetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Execute(ctx, `DELETE FROM favorite_planets WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
