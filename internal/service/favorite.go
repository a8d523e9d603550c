package service

import (
	"context"

	"github.com/forgo/holocron/api/internal/model"
)

// FavoriteCharacterRepository defines the interface for favorite character storage
type FavoriteCharacterRepository interface {
	GetByID(ctx context.Context, id int64) (*model.FavoriteCharacter, error)
	GetByUserID(ctx context.Context, userID int64) ([]*model.FavoriteCharacter, error)
	Create(ctx context.Context, fav *model.FavoriteCharacter) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// FavoritePlanetRepository defines the interface for favorite planet storage
type FavoritePlanetRepository interface {
	GetByID(ctx context.Context, id int64) (*model.FavoritePlanet, error)
	GetByUserID(ctx context.Context, userID int64) ([]*model.FavoritePlanet, error)
	Create(ctx context.Context, fav *model.FavoritePlanet) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// FavoriteService handles favorite characters and planets
type FavoriteService struct {
	userRepo      UserRepository
	characterRepo CharacterRepository
	planetRepo    PlanetRepository
	favCharRepo   FavoriteCharacterRepository
	favPlanetRepo FavoritePlanetRepository
}

// FavoriteServiceConfig holds configuration for the favorite service
type FavoriteServiceConfig struct {
	UserRepo              UserRepository
	CharacterRepo         CharacterRepository
	PlanetRepo            PlanetRepository
	FavoriteCharacterRepo FavoriteCharacterRepository
	FavoritePlanetRepo    FavoritePlanetRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(cfg FavoriteServiceConfig) *FavoriteService {
	return &FavoriteService{
		userRepo:      cfg.UserRepo,
		characterRepo: cfg.CharacterRepo,
		planetRepo:    cfg.PlanetRepo,
		favCharRepo:   cfg.FavoriteCharacterRepo,
		favPlanetRepo: cfg.FavoritePlanetRepo,
	}
}

// ListCharacters retrieves a user's favorite characters. An unknown user has none.
func (s *FavoriteService) ListCharacters(ctx context.Context, userID int64) ([]*model.FavoriteCharacter, error) {
	return s.favCharRepo.GetByUserID(ctx, userID)
}

// ListPlanets retrieves a user's favorite planets. An unknown user has none.
func (s *FavoriteService) ListPlanets(ctx context.Context, userID int64) ([]*model.FavoritePlanet, error) {
	return s.favPlanetRepo.GetByUserID(ctx, userID)
}

// AddCharacter links a user to a character. Both must exist.
func (s *FavoriteService) AddCharacter(ctx context.Context, req *model.AddFavoriteCharacterRequest) (*model.FavoriteCharacter, error) {
	if err := s.requireUser(ctx, *req.UserID); err != nil {
		return nil, err
	}

	character, err := s.characterRepo.GetByID(ctx, *req.CharacterID)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, ErrCharacterNotFound
	}

	fav := &model.FavoriteCharacter{UserID: *req.UserID, CharacterID: *req.CharacterID}
	if err := s.favCharRepo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// AddPlanet links a user to a planet. Both must exist.
func (s *FavoriteService) AddPlanet(ctx context.Context, req *model.AddFavoritePlanetRequest) (*model.FavoritePlanet, error) {
	if err := s.requireUser(ctx, *req.UserID); err != nil {
		return nil, err
	}

	planet, err := s.planetRepo.GetByID(ctx, *req.PlanetID)
	if err != nil {
		return nil, err
	}
	if planet == nil {
		return nil, ErrPlanetNotFound
	}

	fav := &model.FavoritePlanet{UserID: *req.UserID, PlanetID: *req.PlanetID}
	if err := s.favPlanetRepo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// RemoveCharacter deletes a favorite character row by its own ID
func (s *FavoriteService) RemoveCharacter(ctx context.Context, id int64) error {
	fav, err := s.favCharRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fav == nil {
		return ErrFavoriteNotFound
	}
	return s.remove(s.favCharRepo.Delete(ctx, id))
}

// RemovePlanet deletes a favorite planet row by its own ID
func (s *FavoriteService) RemovePlanet(ctx context.Context, id int64) error {
	fav, err := s.favPlanetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fav == nil {
		return ErrFavoriteNotFound
	}
	return s.remove(s.favPlanetRepo.Delete(ctx, id))
}

func (s *FavoriteService) remove(deleted bool, err error) error {
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *FavoriteService) requireUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
