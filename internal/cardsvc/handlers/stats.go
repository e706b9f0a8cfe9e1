package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

func (h *Handler) GlobalStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Global(r.Context())
	if err != nil {
		log.Errorf("Error [StatsService.Global] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to build stats"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: stats})
}

func (h *Handler) CardStatsHandler(w http.ResponseWriter, r *http.Request) {
	card, ok := h.loadCard(w, r)
	if !ok {
		return
	}

	stats, err := h.stats.Card(r.Context(), card)
	if err != nil {
		log.Errorf("Error [StatsService.Card] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to build card stats"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: stats})
}
