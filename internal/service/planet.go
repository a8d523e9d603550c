package service

import (
	"context"

	"github.com/forgo/holocron/api/internal/model"
)

// PlanetRepository defines the interface for planet storage
type PlanetRepository interface {
	List(ctx context.Context) ([]*model.Planet, error)
	GetByID(ctx context.Context, id int64) (*model.Planet, error)
	Create(ctx context.Context, planet *model.Planet) error
}

// PlanetService handles planet business logic
type PlanetService struct {
	planetRepo PlanetRepository
}

// PlanetServiceConfig holds configuration for the planet service
type PlanetServiceConfig struct {
	PlanetRepo PlanetRepository
}

// NewPlanetService creates a new planet service
func NewPlanetService(cfg PlanetServiceConfig) *PlanetService {
	return &PlanetService{
		planetRepo: cfg.PlanetRepo,
	}
}

// List retrieves every planet
func (s *PlanetService) List(ctx context.Context) ([]*model.Planet, error) {
	return s.planetRepo.List(ctx)
}

// Get retrieves a planet by ID
func (s *PlanetService) Get(ctx context.Context, id int64) (*model.Planet, error) {
	planet, err := s.planetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if planet == nil {
		return nil, ErrPlanetNotFound
	}
	return planet, nil
}

// Create stores a new planet
func (s *PlanetService) Create(ctx context.Context, req *model.CreatePlanetRequest) (*model.Planet, error) {
	planet := req.ToPlanet()
	if err := s.planetRepo.Create(ctx, planet); err != nil {
		return nil, err
	}
	return planet, nil
}
