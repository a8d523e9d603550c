package model

// FavoriteCharacter links a user to a character they like
type FavoriteCharacter struct {
	ID          int64 `db:"id" json:"id"`
	UserID      int64 `db:"user_id" json:"user_id"`
	CharacterID int64 `db:"character_id" json:"character_id"`
}

// Serialize returns the favorite as a JSON-safe map
func (f *FavoriteCharacter) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":           f.ID,
		"user_id":      f.UserID,
		"character_id": f.CharacterID,
	}
}

// FavoritePlanet links a user to a planet they like
type FavoritePlanet struct {
	ID       int64 `db:"id" json:"id"`
	UserID   int64 `db:"user_id" json:"user_id"`
	PlanetID int64 `db:"planet_id" json:"planet_id"`
}

// Serialize returns the favorite as a JSON-safe map
func (f *FavoritePlanet) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":        f.ID,
		"user_id":   f.UserID,
		"planet_id": f.PlanetID,
	}
}

// AddFavoriteCharacterRequest represents a request to favorite a character
type AddFavoriteCharacterRequest struct {
	UserID      *int64 `json:"user_id"`
	CharacterID *int64 `json:"character_id"`
}

// Validate checks that every required key is present
func (r *AddFavoriteCharacterRequest) Validate() []FieldError {
	var errors []FieldError

	if r.UserID == nil {
		errors = append(errors, requiredField("user_id"))
	}
	if r.CharacterID == nil {
		errors = append(errors, requiredField("character_id"))
	}

	return errors
}

// AddFavoritePlanetRequest represents a request to favorite a planet
type AddFavoritePlanetRequest struct {
	UserID   *int64 `json:"user_id"`
	PlanetID *int64 `json:"planet_id"`
}

// Validate checks that every required key is present
func (r *AddFavoritePlanetRequest) Validate() []FieldError {
	var errors []FieldError

	if r.UserID == nil {
		errors = append(errors, requiredField("user_id"))
	}
	if r.PlanetID == nil {
		errors = append(errors, requiredField("planet_id"))
	}

	return errors
}
