package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/holocron/holocron-api/internal/validation"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{"valid", `{"name":"Endor"}`, true, http.StatusOK},
		{"malformed", `{"name":`, false, http.StatusBadRequest},
		{"wrong type", `{"name":42}`, false, http.StatusBadRequest},
		{"empty", ``, false, http.StatusBadRequest},
		{"too large", `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`, false, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/planets", strings.NewReader(tt.body))

			var dst struct {
				Name string `json:"name"`
			}
			ok := decodeJSON(rec, req, &dst)

			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/characters", nil)
	writeError(rec, req, &validation.MissingFieldError{Field: "eye_color", Label: "eye color"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"No eye color was provided"}`, rec.Body.String())

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	req = httptest.NewRequest(http.MethodGet, "/planets", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rec = httptest.NewRecorder()

	writeError(rec, req, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"msg":"Internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "connection reset")
}
