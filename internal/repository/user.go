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

var userColumns = []string{"id", "email", "password", "name", "last_name"}

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (err error) {
	defer metrics.ObserveDBRequest("users.create", time.Now(), &err)

	query, args, err := sq.Insert("users").
		Columns("email", "password", "name", "last_name").
		Values(user.Email, user.Password, user.Name, user.LastName).
		ToSql()
	if err != nil {
		return fmt.Errorf("building user insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicate
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "users.get_by_email", sq.Eq{"email": email})
}

// GetByCredentials retrieves the user whose email and stored password both
// equal the given values.
func (r *UserRepository) GetByCredentials(ctx context.Context, email, password string) (*model.User, error) {
	return r.getOne(ctx, "users.get_by_credentials", sq.Eq{"email": email, "password": password})
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, "users.get_by_id", sq.Eq{"id": id})
}

func (r *UserRepository) getOne(ctx context.Context, op string, where sq.Eq) (_ *model.User, err error) {
	defer metrics.ObserveDBRequest(op, time.Now(), &err)

	query, args, err := sq.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building user select: %w", err)
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
