package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/avvvet/card-services/internal/photo"
	"github.com/avvvet/card-services/internal/vcard"
	"github.com/go-chi/chi"
)

// PhotoHandler serves a stored card photo.
func (h *Handler) PhotoHandler(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	if !photo.Allowed(filename) {
		h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "Photo not found"})
		return
	}

	path := filepath.Join(h.uploadDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "Photo not found"})
		return
	}

	w.Header().Set("Content-Type", photo.MimeType(filename))
	http.ServeFile(w, r, path)
}

// VCardHandler streams the card as a downloadable vCard file.
func (h *Handler) VCardHandler(w http.ResponseWriter, r *http.Request) {
	card, ok := h.loadCard(w, r)
	if !ok {
		return
	}

	content := vcard.Generate(card, h.photoURL(card))

	w.Header().Set("Content-Type", "text/vcard")
	w.Header().Set("Content-Disposition", `attachment; filename="`+vcard.Filename(card)+`"`)
	w.Write([]byte(content))
}
