package service

import (
	"context"
	"errors"

	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/repository"
	"github.com/holocron/holocron-api/internal/validation"
)

var ErrCharacterExists = errors.New("character already exists")

// CharacterRepository is the persistence the character service needs.
type CharacterRepository interface {
	Create(ctx context.Context, c *model.Character) error
	GetByName(ctx context.Context, name string) (*model.Character, error)
	List(ctx context.Context) ([]model.Character, error)
}

// CharacterService manages the character catalog.
type CharacterService struct {
	repo CharacterRepository
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(repo CharacterRepository) *CharacterService {
	return &CharacterService{repo: repo}
}

// Create stores a new character. Names are unique.
func (s *CharacterService) Create(ctx context.Context, req model.CharacterRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	character := req.Character()

	_, err := s.repo.GetByName(ctx, character.Name)
	if err == nil {
		return ErrCharacterExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.repo.Create(ctx, &character); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrCharacterExists
		}
		return err
	}

	return nil
}

// List returns all characters in store order.
func (s *CharacterService) List(ctx context.Context) ([]model.Character, error) {
	characters, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if characters == nil {
		characters = []model.Character{}
	}
	return characters, nil
}
