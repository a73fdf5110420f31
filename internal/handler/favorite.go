package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/service"
)

// FavoriteHandler handles HTTP requests for favorites.
type FavoriteHandler struct {
	service *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: svc}
}

// HandleList handles GET /favorites requests.
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// HandleCreate handles POST /favorites requests.
func (h *FavoriteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Create(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Favorite successfully created")
}

// HandleDelete handles DELETE /favorites/{id} requests. The route only
// matches digits; ids that overflow int64 cannot exist.
func (h *FavoriteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Favorite not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteIDRequired):
			writeMessage(w, http.StatusBadRequest, "ID is required")
		case errors.Is(err, service.ErrFavoriteNotFound):
			writeMessage(w, http.StatusNotFound, "Favorite not found")
		default:
			writeError(w, r, err)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Favorite successfully deleted")
}
