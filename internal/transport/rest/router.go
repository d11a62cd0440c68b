package rest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog"
)

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	Debug          bool
}

func NewRouter(cfg RouterConfig, h *Handler) *chi.Mux {
	requestLogger := httplog.NewLogger(cfg.ServiceName, httplog.Options{
		JSON:    true,
		Concise: !cfg.Debug,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(requestLogger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", h.Health)
	r.Post("/api/process_email", h.ProcessEmail)

	return r
}
