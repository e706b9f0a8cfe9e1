package routes

import (
	"github.com/avvvet/card-services/internal/feedsvc/handlers"
	"github.com/avvvet/card-services/internal/feedsvc/ws"
	"github.com/go-chi/chi"
)

func SetRoutes(r *chi.Mux, ws *ws.Ws) {
	h := handlers.NewHandler(ws)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/ws/feed", h.HandleFeed)
		r.Get("/health", h.HealthHandler)
	})
}
