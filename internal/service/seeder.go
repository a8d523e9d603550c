package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/forgo/holocron/api/internal/model"
)

// SeederService loads catalog and user data from YAML seed files
type SeederService struct {
	users      *UserService
	characters *CharacterService
	planets    *PlanetService
}

// SeederServiceConfig holds configuration for the seeder service
type SeederServiceConfig struct {
	UserRepo      UserRepository
	CharacterRepo CharacterRepository
	PlanetRepo    PlanetRepository
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederServiceConfig) *SeederService {
	return &SeederService{
		users:      NewUserService(UserServiceConfig{UserRepo: cfg.UserRepo}),
		characters: NewCharacterService(CharacterServiceConfig{CharacterRepo: cfg.CharacterRepo}),
		planets:    NewPlanetService(PlanetServiceConfig{PlanetRepo: cfg.PlanetRepo}),
	}
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Users      int   `json:"users" yaml:"users"`
	Characters int   `json:"characters" yaml:"characters"`
	Planets    int   `json:"planets" yaml:"planets"`
	Duration   int64 `json:"duration_ms" yaml:"duration_ms"`
}

// ParseSeed decodes seed YAML. Unknown keys are rejected so typos surface early.
func ParseSeed(data []byte) (*model.SeedData, error) {
	var seed model.SeedData
	if err := yaml.UnmarshalWithOptions(data, &seed, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedFileInvalid, err)
	}

	for i, u := range seed.Users {
		if u.Email == "" {
			return nil, fmt.Errorf("%w: users[%d] has no email", ErrSeedFileInvalid, i)
		}
	}
	for i, c := range seed.Characters {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: characters[%d] has no name", ErrSeedFileInvalid, i)
		}
	}
	for i, p := range seed.Planets {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: planets[%d] has no name", ErrSeedFileInvalid, i)
		}
	}

	return &seed, nil
}

// LoadSeedFile reads and parses a seed file from disk
func LoadSeedFile(path string) (*model.SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// Seed inserts every entry of seed. Characters and planets go first, then users.
// It stops at the first failure; rows inserted before it are kept.
func (s *SeederService) Seed(ctx context.Context, seed *model.SeedData) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{}

	for _, c := range seed.Characters {
		req := &model.CreateCharacterRequest{Name: &c.Name, Gender: &c.Gender}
		if _, err := s.characters.Create(ctx, req); err != nil {
			return result, fmt.Errorf("seed character %q: %w", c.Name, err)
		}
		result.Characters++
	}

	for _, p := range seed.Planets {
		req := &model.CreatePlanetRequest{Name: &p.Name}
		if _, err := s.planets.Create(ctx, req); err != nil {
			return result, fmt.Errorf("seed planet %q: %w", p.Name, err)
		}
		result.Planets++
	}

	for _, u := range seed.Users {
		req := &model.CreateUserRequest{Email: &u.Email, Password: &u.Password, IsActive: &u.IsActive}
		if _, err := s.users.Create(ctx, req); err != nil {
			return result, fmt.Errorf("seed user %q: %w", u.Email, err)
		}
		result.Users++
	}

	result.Duration = time.Since(start).Milliseconds()
	return result, nil
}
