// Package service implements the business logic layer for the Holocron API.
//
// Services sit between HTTP handlers and repositories. They own existence
// checks, foreign-key validation before inserts, and the translation of store
// errors into the sentinel errors handlers know how to report.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods run at most a handful of single-statement repository calls
//   - Errors are returned as sentinel errors from errors.go, wrapped when extra context helps
//
// # Repository Interfaces
//
// Services define their own repository interfaces so tests can substitute
// in-memory fakes or a real SQLite database.
//
// # Example Usage
//
//	favorites := NewFavoriteService(FavoriteServiceConfig{
//	    UserRepo:              userRepository,
//	    CharacterRepo:         characterRepository,
//	    PlanetRepo:            planetRepository,
//	    FavoriteCharacterRepo: favoriteCharacterRepository,
//	    FavoritePlanetRepo:    favoritePlanetRepository,
//	})
//	fav, err := favorites.AddPlanet(ctx, &model.AddFavoritePlanetRequest{...})
package service
