package model

// User represents a registered user in the database.
type User struct {
	ID       int64  `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Name     string `db:"name"`
	LastName string `db:"last_name"`
}

// RegisterRequest represents a user registration request. Every field must be
// present and non-empty.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required" label:"last name"`
}

// LoginRequest represents a login request. Fields only have to be present.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// TokenResponse carries the bearer token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the identity returned by the protected route.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
