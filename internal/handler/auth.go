package handler

import (
	"errors"
	"net/http"

	"github.com/holocron/holocron-api/internal/middleware"
	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/service"
)

// AuthHandler handles HTTP requests for users and authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleHello handles GET /user requests.
func (h *AuthHandler) HandleHello(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Hello, this is your GET /user response ")
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			writeMessage(w, http.StatusUnauthorized, "User already exists")
			return
		}
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "User registered successfully")
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleProtected handles GET and POST /protected requests.
func (h *AuthHandler) HandleProtected(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Missing Authorization Header")
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
