package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron/holocron-api/internal/config"
	"github.com/holocron/holocron-api/internal/crypto"
	"github.com/holocron/holocron-api/internal/model"
	"github.com/holocron/holocron-api/internal/repository"
)

const testSecret = "router-test-secret"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Default()
	cfg.Env = "test"
	cfg.Auth.JWTSecret = testSecret

	return New(cfg, zerolog.Nop(), MemoryStores(repository.NewMemoryStore()))
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func msg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body model.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Msg
}

const (
	lukeBody  = `{"email":"luke@rebels.org","password":"x-wing","name":"Luke","last_name":"Skywalker"}`
	lukeLogin = `{"email":"luke@rebels.org","password":"x-wing"}`
)

func TestHello(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/user", "/api/user"} {
		rec := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Hello, this is your GET /user response ", msg(t, rec))
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"success", lukeBody, http.StatusOK, "User registered successfully"},
		{"missing email", `{"password":"p","name":"n","last_name":"l"}`, http.StatusBadRequest, "No email was provided"},
		{"empty email", `{"email":"","password":"p","name":"n","last_name":"l"}`, http.StatusBadRequest, "No email was provided"},
		{"missing password", `{"email":"e","name":"n","last_name":"l"}`, http.StatusBadRequest, "No password was provided"},
		{"missing name", `{"email":"e","password":"p","last_name":"l"}`, http.StatusBadRequest, "No name was provided"},
		{"missing last name", `{"email":"e","password":"p","name":"n"}`, http.StatusBadRequest, "No last name was provided"},
		{"all missing", `{}`, http.StatusBadRequest, "No email was provided"},
		{"malformed", `{"email":`, http.StatusBadRequest, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t), http.MethodPost, "/register", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, msg(t, rec))
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h := newTestServer(t)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/register", lukeBody).Code)

	rec := do(t, h, http.MethodPost, "/api/register", lukeBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User already exists", msg(t, rec))
}

func TestLoginAndProtected(t *testing.T) {
	h := newTestServer(t)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/register", lukeBody).Code)

	rec := do(t, h, http.MethodPost, "/login", `{"email":"luke@rebels.org","password":"tie-fighter"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/login", `{"password":"x-wing"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No email was provided", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/login", lukeLogin)
	require.Equal(t, http.StatusOK, rec.Code)

	var token model.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	userID, err := crypto.ValidateToken(token.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec = do(t, h, method, "/protected", "", "Authorization", "Bearer "+token.Token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"email":"luke@rebels.org"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "x-wing")
	}
}

func TestProtectedRejections(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing Authorization Header", msg(t, rec))

	rec = do(t, h, http.MethodGet, "/api/protected", "", "Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	otherSecret, err := crypto.GenerateToken(1, "another-secret", time.Hour)
	require.NoError(t, err)
	rec = do(t, h, http.MethodGet, "/protected", "", "Authorization", "Bearer "+otherSecret)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ghost, err := crypto.GenerateToken(99, testSecret, time.Hour)
	require.NoError(t, err)
	rec = do(t, h, http.MethodGet, "/protected", "", "Authorization", "Bearer "+ghost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", msg(t, rec))
}

func TestCharacters(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/characters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	luke := `{"name":"Luke","birth_year":"19BBY","gender":"male","height":"172","skin_color":"fair","hair_color":"blond","eye_color":"blue"}`
	rec = do(t, h, http.MethodPost, "/characters", luke)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Character created successfully", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/characters", luke)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Character already exists", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/characters", `{"name":"Yoda","birth_year":"896BBY","gender":"male","height":"66","hair_color":"white","eye_color":"brown"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No skin color was provided", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/characters", `{"name":"Yoda","birth_year":null,"gender":"male","height":"66","skin_color":"green","hair_color":"white","eye_color":"brown"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No birth year was provided", msg(t, rec))

	rec = do(t, h, http.MethodGet, "/api/characters", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var characters []model.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &characters))
	require.Len(t, characters, 1)
	assert.Equal(t, model.Character{
		ID: 1, Name: "Luke", BirthYear: "19BBY", Gender: "male", Height: "172",
		SkinColor: "fair", HairColor: "blond", EyeColor: "blue",
	}, characters[0])
}

func TestPlanets(t *testing.T) {
	h := newTestServer(t)

	tatooine := `{"name":"Tatooine","climate":"arid","population":"200000","orbital_period":"304","rotation_period":"23","diameter":"10465","terrain":"desert"}`
	rec := do(t, h, http.MethodPost, "/planets", tatooine)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Planet created successfully", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/planets", tatooine)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Planet already exists", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/planets", `{"name":"Naboo","climate":"temperate"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No population was provided", msg(t, rec))

	rec = do(t, h, http.MethodGet, "/planets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var planets []model.Planet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &planets))
	require.Len(t, planets, 1)
	assert.Equal(t, "desert", planets[0].Terrain)
}

func TestFavorites(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/favorites", `{"characters_id":1,"user_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No planets_id was provided", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/favorites", `{"planets_id":1,"characters_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No user_id was provided", msg(t, rec))

	for i := 0; i < 2; i++ {
		rec = do(t, h, http.MethodPost, "/favorites", `{"planets_id":3,"characters_id":2,"user_id":1}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Favorite successfully created", msg(t, rec))
	}

	rec = do(t, h, http.MethodGet, "/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"user_id":1,"characters_id":2,"planets_id":3},
		{"id":2,"user_id":1,"characters_id":2,"planets_id":3}
	]`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/favorites/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID is required", msg(t, rec))

	rec = do(t, h, http.MethodDelete, "/favorites/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Favorite not found", msg(t, rec))

	rec = do(t, h, http.MethodDelete, "/api/favorites/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Favorite successfully deleted", msg(t, rec))

	rec = do(t, h, http.MethodDelete, "/favorites/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for _, path := range []string{"/favorites/-1", "/favorites/abc"} {
		rec = do(t, h, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec = do(t, h, http.MethodGet, "/favorites", "")
	assert.JSONEq(t, `[{"id":2,"user_id":1,"characters_id":2,"planets_id":3}]`, rec.Body.String())
}

func TestRequestBodyLimit(t *testing.T) {
	h := newTestServer(t)

	big := `{"email":"` + strings.Repeat("a", 2<<20) + `"}`
	rec := do(t, h, http.MethodPost, "/register", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	do(t, h, http.MethodGet, "/planets", "")

	rec = do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/planets",status_code="200"}`)
}

func TestRequestIDAndCORS(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/user", "", "X-Request-ID", "trace-1")
	assert.Equal(t, "trace-1", rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodOptions, "/characters", "",
		"Origin", "http://localhost:3000",
		"Access-Control-Request-Method", http.MethodPost,
	)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFavoritesWithSingleLink(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/favorites", `{"planets_id":null,"characters_id":2,"user_id":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Favorite successfully created", msg(t, rec))

	rec = do(t, h, http.MethodPost, "/api/favorites", `{"planets_id":4,"characters_id":null,"user_id":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/favorites", `{"planets_id":4,"characters_id":2,"user_id":null}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No user_id was provided", msg(t, rec))

	rec = do(t, h, http.MethodGet, "/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"user_id":1,"characters_id":2,"planets_id":null},
		{"id":2,"user_id":1,"characters_id":null,"planets_id":4}
	]`, rec.Body.String())
}

func TestListingsAreIdempotent(t *testing.T) {
	h := newTestServer(t)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/characters",
		`{"name":"Lando","birth_year":"31BBY","gender":"male","height":"177","skin_color":"dark","hair_color":"black","eye_color":"brown"}`).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/planets",
		`{"name":"Bespin","climate":"temperate","population":"6000000","orbital_period":"5110","rotation_period":"12","diameter":"118000","terrain":"gas giant"}`).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/favorites",
		`{"planets_id":1,"characters_id":1,"user_id":1}`).Code)

	for _, path := range []string{"/characters", "/planets", "/favorites"} {
		first := do(t, h, http.MethodGet, path, "")
		second := do(t, h, http.MethodGet, path, "")

		require.Equal(t, http.StatusOK, first.Code, path)
		assert.Equal(t, first.Body.String(), second.Body.String(), path)
		assert.NotEqual(t, "[]\n", first.Body.String(), path)
	}
}
