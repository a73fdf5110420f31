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

var planetColumns = []string{
	"id", "name", "climate", "population", "orbital_period", "rotation_period", "diameter", "terrain",
}

// PlanetRepository handles planet persistence operations.
type PlanetRepository struct {
	db *sqlx.DB
}

// NewPlanetRepository creates a new PlanetRepository.
func NewPlanetRepository(db *sqlx.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// Create inserts a planet and sets its generated ID.
func (r *PlanetRepository) Create(ctx context.Context, p *model.Planet) (err error) {
	defer metrics.ObserveDBRequest("planets.create", time.Now(), &err)

	query, args, err := sq.Insert("planets").
		Columns(planetColumns[1:]...).
		Values(p.Name, p.Climate, p.Population, p.OrbitalPeriod, p.RotationPeriod, p.Diameter, p.Terrain).
		ToSql()
	if err != nil {
		return fmt.Errorf("building planet insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicate
		}
		return err
	}

	p.ID, err = result.LastInsertId()
	return err
}

// GetByName retrieves a planet by its unique name.
func (r *PlanetRepository) GetByName(ctx context.Context, name string) (_ *model.Planet, err error) {
	defer metrics.ObserveDBRequest("planets.get_by_name", time.Now(), &err)

	query, args, err := sq.Select(planetColumns...).From("planets").
		Where(sq.Eq{"name": name}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building planet select: %w", err)
	}

	var p model.Planet
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// List returns every planet ordered by ID.
func (r *PlanetRepository) List(ctx context.Context) (_ []model.Planet, err error) {
	defer metrics.ObserveDBRequest("planets.list", time.Now(), &err)

	query, args, err := sq.Select(planetColumns...).From("planets").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building planet list: %w", err)
	}

	planets := []model.Planet{}
	if err := r.db.SelectContext(ctx, &planets, query, args...); err != nil {
		return nil, err
	}

	return planets, nil
}
