package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/holocron/holocron-api/internal/metrics"
	"github.com/holocron/holocron-api/internal/model"
)

var characterColumns = []string{
	"id", "name", "birth_year", "gender", "height", "skin_color", "hair_color", "eye_color",
}

// CharacterRepository handles character persistence operations.
type CharacterRepository struct {
	db *sqlx.DB
}

// NewCharacterRepository creates a new CharacterRepository.
func NewCharacterRepository(db *sqlx.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create inserts a character and sets its generated ID.
func (r *CharacterRepository) Create(ctx context.Context, c *model.Character) (err error) {
	defer metrics.ObserveDBRequest("characters.create", time.Now(), &err)

	query, args, err := sq.Insert("characters").
		Columns(characterColumns[1:]...).
		Values(c.Name, c.BirthYear, c.Gender, c.Height, c.SkinColor, c.HairColor, c.EyeColor).
		ToSql()
	if err != nil {
		return fmt.Errorf("building character insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicate
		}
		return err
	}

	c.ID, err = result.LastInsertId()
	return err
}

// GetByName retrieves a character by its unique name.
func (r *CharacterRepository) GetByName(ctx context.Context, name string) (_ *model.Character, err error) {
	defer metrics.ObserveDBRequest("characters.get_by_name", time.Now(), &err)

	query, args, err := sq.Select(characterColumns...).From("characters").
		Where(sq.Eq{"name": name}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building character select: %w", err)
	}

	var c model.Character
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &c, nil
}

// List returns every character ordered by ID.
func (r *CharacterRepository) List(ctx context.Context) (_ []model.Character, err error) {
	defer metrics.ObserveDBRequest("characters.list", time.Now(), &err)

	query, args, err := sq.Select(characterColumns...).From("characters").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building character list: %w", err)
	}

	characters := []model.Character{}
	if err := r.db.SelectContext(ctx, &characters, query, args...); err != nil {
		return nil, err
	}

	return characters, nil
}
