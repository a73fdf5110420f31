package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/holocron/holocron-api/internal/metrics"
	"github.com/holocron/holocron-api/internal/model"
)

// FavoriteRepository handles favorite persistence operations.
type FavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a favorite and sets its generated ID. No uniqueness or
// foreign key checks are made.
func (r *FavoriteRepository) Create(ctx context.Context, f *model.Favorite) (err error) {
	defer metrics.ObserveDBRequest("favorites.create", time.Now(), &err)

	query, args, err := sq.Insert("favorites").
		Columns("user_id", "characters_id", "planets_id").
		Values(f.UserID, f.CharactersID, f.PlanetsID).
		ToSql()
	if err != nil {
		return fmt.Errorf("building favorite insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	f.ID, err = result.LastInsertId()
	return err
}

// List returns every favorite ordered by ID.
func (r *FavoriteRepository) List(ctx context.Context) (_ []model.Favorite, err error) {
	defer metrics.ObserveDBRequest("favorites.list", time.Now(), &err)

	query, args, err := sq.Select("id", "user_id", "characters_id", "planets_id").
		From("favorites").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building favorite list: %w", err)
	}

	favorites := []model.Favorite{}
	if err := r.db.SelectContext(ctx, &favorites, query, args...); err != nil {
		return nil, err
	}

	return favorites, nil
}

// Delete removes the favorite with the given ID, returning ErrNotFound when
// no row matched.
func (r *FavoriteRepository) Delete(ctx context.Context, id int64) (err error) {
	defer metrics.ObserveDBRequest("favorites.delete", time.Now(), &err)

	query, args, err := sq.Delete("favorites").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building favorite delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
