package model

// Character represents a Star Wars character
type Character struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Gender string `db:"gender" json:"gender"`
}

// Serialize returns the character as a JSON-safe map
func (c *Character) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":     c.ID,
		"name":   c.Name,
		"gender": c.Gender,
	}
}

// CreateCharacterRequest represents a request to create a character
type CreateCharacterRequest struct {
	Name   *string `json:"name"`
	Gender *string `json:"gender"`
}

// Validate checks that every required key is present
func (r *CreateCharacterRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == nil {
		errors = append(errors, requiredField("name"))
	}
	if r.Gender == nil {
		errors = append(errors, requiredField("gender"))
	}

	return errors
}

// ToCharacter builds the row to insert. Call Validate first.
func (r *CreateCharacterRequest) ToCharacter() *Character {
	return &Character{Name: *r.Name, Gender: *r.Gender}
}
