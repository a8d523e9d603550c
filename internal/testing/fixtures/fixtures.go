// Package fixtures provides test data factories.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option structs. Factories insert through the
// repositories and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	planet := f.CreatePlanet(t)
//	fav := f.CreateFavoritePlanet(t, user, planet)
package fixtures

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
	"github.com/forgo/holocron/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	users      *repository.UserRepository
	characters *repository.CharacterRepository
	planets    *repository.PlanetRepository
	favChars   *repository.FavoriteCharacterRepository
	favPlanets *repository.FavoritePlanetRepository
	seq        atomic.Int64
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users:      repository.NewUserRepository(db),
		characters: repository.NewCharacterRepository(db),
		planets:    repository.NewPlanetRepository(db),
		favChars:   repository.NewFavoriteCharacterRepository(db),
		favPlanets: repository.NewFavoritePlanetRepository(db),
	}
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Password string
	Inactive bool
}

// CreateUser creates an active user with a unique email
func (f *Factory) CreateUser(t *testing.T, opts ...UserOpts) *model.User {
	t.Helper()

	n := f.seq.Add(1)
	user := &model.User{
		Email:    fmt.Sprintf("pilot%d@rebellion.org", n),
		Password: "x-wing",
		IsActive: true,
	}
	if len(opts) > 0 {
		o := opts[0]
		if o.Email != "" {
			user.Email = o.Email
		}
		if o.Password != "" {
			user.Password = o.Password
		}
		user.IsActive = !o.Inactive
	}

	if err := f.users.Create(ctx(t), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// ============================================================================
// Catalog Fixtures
// ============================================================================

// CreateCharacter creates a character. name and gender default when empty.
func (f *Factory) CreateCharacter(t *testing.T, name, gender string) *model.Character {
	t.Helper()

	if name == "" {
		name = fmt.Sprintf("Clone %d", f.seq.Add(1))
	}
	if gender == "" {
		gender = "male"
	}
	character := &model.Character{Name: name, Gender: gender}
	if err := f.characters.Create(ctx(t), character); err != nil {
		t.Fatalf("fixtures: failed to create character: %v", err)
	}
	return character
}

// CreatePlanet creates a planet. name defaults when empty.
func (f *Factory) CreatePlanet(t *testing.T, name string) *model.Planet {
	t.Helper()

	if name == "" {
		name = fmt.Sprintf("Outer Rim %d", f.seq.Add(1))
	}
	planet := &model.Planet{Name: name}
	if err := f.planets.Create(ctx(t), planet); err != nil {
		t.Fatalf("fixtures: failed to create planet: %v", err)
	}
	return planet
}

// ============================================================================
// Favorite Fixtures
// ============================================================================

// CreateFavoriteCharacter links user to character
func (f *Factory) CreateFavoriteCharacter(t *testing.T, user *model.User, character *model.Character) *model.FavoriteCharacter {
	t.Helper()

	fav := &model.FavoriteCharacter{UserID: user.ID, CharacterID: character.ID}
	if err := f.favChars.Create(ctx(t), fav); err != nil {
		t.Fatalf("fixtures: failed to create favorite character: %v", err)
	}
	return fav
}

// CreateFavoritePlanet links user to planet
func (f *Factory) CreateFavoritePlanet(t *testing.T, user *model.User, planet *model.Planet) *model.FavoritePlanet {
	t.Helper()

	fav := &model.FavoritePlanet{UserID: user.ID, PlanetID: planet.ID}
	if err := f.favPlanets.Create(ctx(t), fav); err != nil {
		t.Fatalf("fixtures: failed to create favorite planet: %v", err)
	}
	return fav
}
