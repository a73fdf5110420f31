package service

import (
	"context"
	"errors"
	"time"

	"github.com/holocron/holocron-api/internal/crypto"
	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/repository"
	"github.com/holocron/holocron-api/internal/validation"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserRepository is the persistence the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByCredentials(ctx context.Context, email, password string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles authentication business logic.
type AuthService struct {
	repo      UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	scheme    string
}

// NewAuthService creates a new AuthService. scheme is crypto.SchemePlain or
// crypto.SchemeArgon2id.
func NewAuthService(repo UserRepository, secret string, expiry time.Duration, scheme string) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
		scheme:    scheme,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	password := req.Password
	if s.scheme == crypto.SchemeArgon2id {
		if password, err = crypto.HashPassword(req.Password); err != nil {
			return err
		}
	}

	user := &model.User{
		Email:    req.Email,
		Password: password,
		Name:     req.Name,
		LastName: req.LastName,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserExists
		}
		return err
	}

	return nil
}

// Login checks the credentials and returns a token whose subject is the user id.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	if err := validation.Struct(req); err != nil {
		return model.TokenResponse{}, err
	}

	user, err := s.authenticate(ctx, *req.Email, *req.Password)
	if err != nil {
		return model.TokenResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if s.scheme != crypto.SchemeArgon2id {
		user, err := s.repo.GetByCredentials(ctx, email, password)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return user, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := crypto.VerifyPassword(password, user.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidHashFormat) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}
