package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/avvvet/card-services/internal/cardsvc/models"
	"github.com/avvvet/card-services/internal/cardsvc/service"
	"github.com/go-chi/jwtauth"
)

// uploads are capped at 5MB
const maxUploadBytes = 5 << 20

type Handler struct {
	tokenAuth *jwtauth.JWTAuth
	cards     *service.CardService
	scans     *service.ScanService
	stats     *service.StatsService
	uploadDir string
	baseURL   string
}

func NewHandler(cards *service.CardService, scans *service.ScanService,
	stats *service.StatsService, uploadDir, baseURL string) *Handler {
	return &Handler{
		cards:     cards,
		scans:     scans,
		stats:     stats,
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (rs *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "card service is running at port " + os.Getenv("CARD_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}

// LoginHandler checks the admin password and issues a 24h token.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "Password required"})
		return
	}

	if req.Password != os.Getenv("ADMIN_PASSWORD") {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "Invalid password"})
		return
	}

	expirationTime := time.Now().Add(24 * time.Hour).Unix()

	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"authenticated": true,
		"exp":           expirationTime,
	})
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: "failed to issue token"})
		return
	}

	h.CreateResponse(w, Response{
		Message: "Login successful",
		Code:    http.StatusOK,
		Data:    map[string]string{"token": tokenString},
	})
}

// photoURL builds the absolute URL for a card's stored photo.
func (h *Handler) photoURL(card *models.Card) string {
	if card.PhotoPath == "" {
		return ""
	}
	return h.baseURL + "/v1/photos/" + card.PhotoPath
}

func (h *Handler) withPhotoURL(card *models.Card) *models.Card {
	card.PhotoURL = h.photoURL(card)
	return card
}
