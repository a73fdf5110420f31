package handler

import (
	"errors"
	"net/http"

	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/service"
)

// CharacterHandler handles HTTP requests for the character catalog.
type CharacterHandler struct {
	service *service.CharacterService
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(svc *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: svc}
}

// HandleCreate handles POST /characters requests.
func (h *CharacterHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CharacterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Create(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrCharacterExists) {
			writeMessage(w, http.StatusUnauthorized, "Character already exists")
			return
		}
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Character created successfully")
}

// HandleList handles GET /characters requests.
func (h *CharacterHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	characters, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, characters)
}
