package handlers

import (
	"net/http"
	"strings"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/photo"
	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListCardsHandler(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.List(r.Context())
	if err != nil {
		log.Errorf("Error [CardService.List] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to list cards"})
		return
	}

	for _, card := range cards {
		h.withPhotoURL(card)
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: cards})
}

func (h *Handler) GetCardHandler(w http.ResponseWriter, r *http.Request) {
	card, ok := h.loadCard(w, r)
	if !ok {
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: h.withPhotoURL(card)})
}

func (h *Handler) CreateCardHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid form data"})
		return
	}

	card := &models.Card{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Company:   r.FormValue("company"),
		Position:  r.FormValue("position"),
		Website:   r.FormValue("website"),
		IsActive:  true,
	}
	if v := r.FormValue("is_active"); v != "" {
		card.IsActive = strings.ToLower(v) == "true"
	}

	if card.FirstName == "" || card.LastName == "" || card.Email == "" ||
		card.Company == "" || card.Position == "" {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "Missing required fields"})
		return
	}

	asset, ok := h.readPhotoAsset(w, r)
	if !ok {
		return
	}

	if err := h.cards.Create(r.Context(), card, asset); err != nil {
		log.Errorf("Error [CardService.Create] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to create card"})
		return
	}

	h.CreateResponse(w, Response{
		Message: "Card created",
		Code:    http.StatusCreated,
		Data:    h.withPhotoURL(card),
	})
}

func (h *Handler) UpdateCardHandler(w http.ResponseWriter, r *http.Request) {
	card, ok := h.loadCard(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid form data"})
		return
	}

	card.FirstName = formValueDefault(r, "first_name", card.FirstName)
	card.LastName = formValueDefault(r, "last_name", card.LastName)
	card.Email = formValueDefault(r, "email", card.Email)
	card.Phone = formValueDefault(r, "phone", card.Phone)
	card.Company = formValueDefault(r, "company", card.Company)
	card.Position = formValueDefault(r, "position", card.Position)
	card.Website = formValueDefault(r, "website", card.Website)

	if _, ok := r.MultipartForm.Value["is_active"]; ok {
		card.IsActive = strings.ToLower(r.FormValue("is_active")) == "true"
	}

	asset, ok := h.readPhotoAsset(w, r)
	if !ok {
		return
	}

	if err := h.cards.Update(r.Context(), card, asset); err != nil {
		log.Errorf("Error [CardService.Update] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to update card"})
		return
	}

	h.CreateResponse(w, Response{
		Message: "Card updated",
		Code:    http.StatusOK,
		Data:    h.withPhotoURL(card),
	})
}

func (h *Handler) DeleteCardHandler(w http.ResponseWriter, r *http.Request) {
	card, ok := h.loadCard(w, r)
	if !ok {
		return
	}

	if err := h.cards.Delete(r.Context(), card); err != nil {
		log.Errorf("Error [CardService.Delete] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to delete card"})
		return
	}

	h.CreateResponse(w, Response{Message: "Card deleted successfully", Code: http.StatusOK})
}

// loadCard resolves the cardID route param, responding 404 when absent.
func (h *Handler) loadCard(w http.ResponseWriter, r *http.Request) (*models.Card, bool) {
	cardID := chi.URLParam(r, "cardID")

	card, err := h.cards.Get(r.Context(), cardID)
	if err != nil {
		log.Errorf("Error [CardService.Get] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to get card"})
		return nil, false
	}

	if card == nil {
		h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "Card not found"})
		return nil, false
	}

	return card, true
}

// readPhotoAsset normalizes an uploaded photo, if any, before the card
// hits the store. A nil asset means no usable photo was uploaded. It
// writes the error response itself and reports whether to continue.
func (h *Handler) readPhotoAsset(w http.ResponseWriter, r *http.Request) (*photo.Asset, bool) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		return nil, true // no photo part uploaded
	}
	defer file.Close()

	asset, err := photo.Normalize(file, header.Filename)
	if err != nil {
		log.Errorf("Error [photo.Normalize] %s", err)
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to process photo"})
		return nil, false
	}

	return asset, true
}

func formValueDefault(r *http.Request, key, fallback string) string {
	if _, ok := r.MultipartForm.Value[key]; !ok {
		return fallback
	}
	return r.FormValue(key)
}
