package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Post("/auth/login", h.LoginHandler)
		r.Get("/health", h.HealthHandler)
		r.Get("/cards/{cardID}", h.GetCardHandler)
		r.Post("/cards/{cardID}/scan", h.RecordScanHandler)
		r.Get("/cards/{cardID}/vcard", h.VCardHandler)
		r.Get("/photos/{filename}", h.PhotoHandler)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/cards", h.ListCardsHandler)
			r.Post("/cards", h.CreateCardHandler)
			r.Put("/cards/{cardID}", h.UpdateCardHandler)
			r.Delete("/cards/{cardID}", h.DeleteCardHandler)
			r.Get("/stats", h.GlobalStatsHandler)
			r.Get("/stats/{cardID}", h.CardStatsHandler)
		})
	})
}
