package service

import (
	"context"

	"github.com/forgo/holocron/api/internal/model"
)

// CharacterRepository defines the interface for character storage
type CharacterRepository interface {
	List(ctx context.Context) ([]*model.Character, error)
	GetByID(ctx context.Context, id int64) (*model.Character, error)
	Create(ctx context.Context, character *model.Character) error
}

// CharacterService handles character business logic
type CharacterService struct {
	characterRepo CharacterRepository
}

// CharacterServiceConfig holds configuration for the character service
type CharacterServiceConfig struct {
	CharacterRepo CharacterRepository
}

// NewCharacterService creates a new character service
func NewCharacterService(cfg CharacterServiceConfig) *CharacterService {
	return &CharacterService{
		characterRepo: cfg.CharacterRepo,
	}
}

// List retrieves every character
func (s *CharacterService) List(ctx context.Context) ([]*model.Character, error) {
	return s.characterRepo.List(ctx)
}

// Get retrieves a character by ID
func (s *CharacterService) Get(ctx context.Context, id int64) (*model.Character, error) {
	character, err := s.characterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}
	return character, nil
}

// Create stores a new character
func (s *CharacterService) Create(ctx context.Context, req *model.CreateCharacterRequest) (*model.Character, error) {
	character := req.ToCharacter()
	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}
