package handlers

import (
	"net/http"

	"hoolicoin/internal/config"
	"hoolicoin/internal/middleware"
	"hoolicoin/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg    config.Config
	engine EconomyService
	hub    *websocket.Hub
}

func New(cfg config.Config, engine EconomyService, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:    cfg,
		engine: engine,
		hub:    hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Dashboard surface: read-only, unauthenticated.
	router.Get("/shop", h.ListShop)
	router.Get("/ws/balances", h.WSBalances)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Collaborator surface: the chat bot and operator tooling.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		r.Get("/accounts/{id}/balance", h.GetBalance)
		r.Get("/leaderboard", h.Leaderboard)
		r.Post("/purchases", h.Purchase)
		r.Post("/credits", h.Credit)
		r.Post("/rotate", h.Rotate)
	})

	return router
}
