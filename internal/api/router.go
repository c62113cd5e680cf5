package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/player-registry/internal/api/handlers"
	"github.com/baharkarakas/player-registry/internal/config"
	"github.com/baharkarakas/player-registry/internal/metrics"
	"github.com/baharkarakas/player-registry/internal/middleware"
	"github.com/baharkarakas/player-registry/internal/services"
)

func NewRouter(cfg config.Config, ps *services.PlayerService) (http.Handler, error) {
	pages, err := handlers.NewPageHandler(ps)
	if err != nil {
		return nil, err
	}
	players := handlers.NewPlayerHandler(ps)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// ---------- pages ----------
	listing := ps.ListingPath()
	if listing != "/" {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, listing, http.StatusFound)
		})
	}
	r.Get(listing, pages.Listing)
	r.Get(listing+"/create", pages.Form)
	r.Post(listing+"/create", pages.Submit)

	// ---------- json ----------
	r.Route("/api/v1/players", func(r chi.Router) {
		r.Get("/", players.List)
		r.Post("/", players.Create)
		r.Get("/form", players.Form)
		r.Post("/validate", players.Validate)
		r.Put("/{id}", players.Update)
		r.Get("/{id}/history", players.History)
	})

	return r, nil
}
