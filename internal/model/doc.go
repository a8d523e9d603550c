// Package model defines domain entities and data structures for the Holocron API.
//
// # Domain Entities
//
//   - User: account with email, password (stored as given) and active flag
//   - Character, Planet: catalog entries
//   - FavoriteCharacter, FavoritePlanet: join rows linking a user to a liked entry
//
// Entities carry db tags for sqlx scanning and a Serialize method producing the
// JSON-safe map returned by the API. User.Serialize omits the password.
//
// # Requests
//
// Request bodies use pointer fields so an absent key can be told apart from a
// zero value. Validate returns one FieldError per missing key:
//
//	var req model.CreatePlanetRequest
//	if errs := req.Validate(); len(errs) > 0 {
//	    return model.NewValidationError(errs)
//	}
//
// # Envelopes
//
// Successful responses use ListResponse or ItemResponse. Failures use APIError,
// whose body is {"message": "..."} with the status on the response line.
package model
