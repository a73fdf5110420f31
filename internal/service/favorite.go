package service

import (
	"context"
	"errors"

	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/repository"
	"github.com/holocron/holocron-api/internal/validation"
)

var (
	ErrFavoriteIDRequired = errors.New("favorite id is required")
	ErrFavoriteNotFound   = errors.New("favorite not found")
)

// FavoriteRepository is the persistence the favorite service needs.
type FavoriteRepository interface {
	Create(ctx context.Context, f *model.Favorite) error
	List(ctx context.Context) ([]model.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

// FavoriteService manages favorites. Referenced users, characters and
// planets are not checked.
type FavoriteService struct {
	repo FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// Create stores a favorite after checking that every key was sent.
func (s *FavoriteService) Create(ctx context.Context, req model.FavoriteRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	favorite := req.Favorite()
	return s.repo.Create(ctx, &favorite)
}

// List returns all favorites in store order.
func (s *FavoriteService) List(ctx context.Context) ([]model.Favorite, error) {
	favorites, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}
	return favorites, nil
}

// Delete removes a favorite by id. Id 0 is rejected before the store is
// touched.
func (s *FavoriteService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrFavoriteIDRequired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}

	return nil
}
