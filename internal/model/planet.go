package model

// Planet represents a Star Wars planet
type Planet struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Serialize returns the planet as a JSON-safe map
func (p *Planet) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":   p.ID,
		"name": p.Name,
	}
}

// CreatePlanetRequest represents a request to create a planet
type CreatePlanetRequest struct {
	Name *string `json:"name"`
}

// Validate checks that every required key is present
func (r *CreatePlanetRequest) Validate() []FieldError {
	if r.Name == nil {
		return []FieldError{requiredField("name")}
	}
	return nil
}

// ToPlanet builds the row to insert. Call Validate first.
func (r *CreatePlanetRequest) ToPlanet() *Planet {
	return &Planet{Name: *r.Name}
}
