package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/hlog"

	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/validation"
)

const maxBodyBytes = 1 << 20 // 1MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.MessageResponse{Msg: msg})
}

// decodeJSON reads a bounded request body into dst. On failure it writes the
// response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	return true
}

// writeError answers presence failures with 400 and anything unexpected with
// a logged 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *validation.MissingFieldError
	if errors.As(err, &missing) {
		writeMessage(w, http.StatusBadRequest, missing.Error())
		return
	}

	hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}
