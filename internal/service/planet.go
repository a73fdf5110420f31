package service

import (
	"context"
	"errors"

	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/repository"
	"github.com/holocron/holocron-api/internal/validation"
)

var ErrPlanetExists = errors.New("planet already exists")

// PlanetRepository is the persistence the planet service needs.
type PlanetRepository interface {
	Create(ctx context.Context, p *model.Planet) error
	GetByName(ctx context.Context, name string) (*model.Planet, error)
	List(ctx context.Context) ([]model.Planet, error)
}

// PlanetService manages the planet catalog.
type PlanetService struct {
	repo PlanetRepository
}

// NewPlanetService creates a new PlanetService.
func NewPlanetService(repo PlanetRepository) *PlanetService {
	return &PlanetService{repo: repo}
}

// Create stores a new planet. Names are unique.
func (s *PlanetService) Create(ctx context.Context, req model.PlanetRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	planet := req.Planet()

	_, err := s.repo.GetByName(ctx, planet.Name)
	if err == nil {
		return ErrPlanetExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.repo.Create(ctx, &planet); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrPlanetExists
		}
		return err
	}

	return nil
}

// List returns all planets in store order.
func (s *PlanetService) List(ctx context.Context) ([]model.Planet, error) {
	planets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if planets == nil {
		planets = []model.Planet{}
	}
	return planets, nil
}
