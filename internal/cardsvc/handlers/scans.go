package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// RecordScanHandler logs one public view of a card.
func (h *Handler) RecordScanHandler(w http.ResponseWriter, r *http.Request) {
	card, ok := h.loadCard(w, r)
	if !ok {
		return
	}

	scan, err := h.scans.Record(r.Context(), card.ID, r.UserAgent())
	if err != nil {
		log.Errorf("Error [ScanService.Record] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to record scan"})
		return
	}

	h.CreateResponse(w, Response{
		Message: "Scan recorded",
		Code:    http.StatusCreated,
		Data:    map[string]string{"device_type": scan.DeviceType},
	})
}
