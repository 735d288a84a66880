package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/workday-backend/internal/service"
)

// PaymentHandler обрабатывает эндпоинты платежей
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler создает новый PaymentHandler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateIntentRequest представляет тело запроса на создание платежа
type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntentResponse представляет ответ с client secret шлюза
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent обрабатывает POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(r.Context(), req.Price)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CreateIntentResponse{ClientSecret: clientSecret})
}
