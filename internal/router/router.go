// Package router assembles the HTTP surface: middleware chain, API routes
// mounted at both / and /api, health and metrics.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/holocron/holocron-api/internal/config"
	"github.com/holocron/holocron-api/internal/handler"
	"github.com/holocron/holocron-api/internal/metrics"
	"github.com/holocron/holocron-api/internal/middleware"
	"github.com/holocron/holocron-api/internal/repository"
	"github.com/holocron/holocron-api/internal/service"
)

// Stores bundles the persistence backends the services run on.
type Stores struct {
	Users      service.UserRepository
	Characters service.CharacterRepository
	Planets    service.PlanetRepository
	Favorites  service.FavoriteRepository
}

// MySQLStores returns stores backed by db.
func MySQLStores(db *sqlx.DB) Stores {
	return Stores{
		Users:      repository.NewUserRepository(db),
		Characters: repository.NewCharacterRepository(db),
		Planets:    repository.NewPlanetRepository(db),
		Favorites:  repository.NewFavoriteRepository(db),
	}
}

// MemoryStores returns stores backed by an in-process MemoryStore.
func MemoryStores(s *repository.MemoryStore) Stores {
	return Stores{
		Users:      s.Users(),
		Characters: s.Characters(),
		Planets:    s.Planets(),
		Favorites:  s.Favorites(),
	}
}

// New wires services and handlers over stores and returns the root handler.
func New(cfg config.Config, log zerolog.Logger, stores Stores) http.Handler {
	authHandler := handler.NewAuthHandler(
		service.NewAuthService(stores.Users, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.PasswordScheme),
	)
	characterHandler := handler.NewCharacterHandler(service.NewCharacterService(stores.Characters))
	planetHandler := handler.NewPlanetHandler(service.NewPlanetService(stores.Planets))
	favoriteHandler := handler.NewFavoriteHandler(service.NewFavoriteService(stores.Favorites))

	r := chi.NewRouter()
	r.Use(hlog.NewHandler(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog())
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	api := func(r chi.Router) {
		r.Get("/user", authHandler.HandleHello)
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.Auth.JWTSecret))
			r.Get("/protected", authHandler.HandleProtected)
			r.Post("/protected", authHandler.HandleProtected)
		})

		r.Get("/characters", characterHandler.HandleList)
		r.Post("/characters", characterHandler.HandleCreate)

		r.Get("/planets", planetHandler.HandleList)
		r.Post("/planets", planetHandler.HandleCreate)

		r.Get("/favorites", favoriteHandler.HandleList)
		r.Post("/favorites", favoriteHandler.HandleCreate)
		r.Delete("/favorites/{id:[0-9]+}", favoriteHandler.HandleDelete)
	}

	r.Group(api)
	r.Route("/api", api)

	return r
}
