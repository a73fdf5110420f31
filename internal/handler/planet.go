package handler

import (
	"errors"
	"net/http"

	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/service"
)

// PlanetHandler handles HTTP requests for the planet catalog.
type PlanetHandler struct {
	service *service.PlanetService
}

// NewPlanetHandler creates a new PlanetHandler.
func NewPlanetHandler(svc *service.PlanetService) *PlanetHandler {
	return &PlanetHandler{service: svc}
}

// HandleCreate handles POST /planets requests.
func (h *PlanetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.PlanetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Create(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrPlanetExists) {
			writeMessage(w, http.StatusUnauthorized, "Planet already exists")
			return
		}
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Planet created successfully")
}

// HandleList handles GET /planets requests.
func (h *PlanetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	planets, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, planets)
}
