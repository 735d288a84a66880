package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/workday-backend/internal/service"
)

// AuthHandler обрабатывает эндпоинты аутентификации
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueTokenRequest представляет тело запроса на выпуск токена
type IssueTokenRequest struct {
	Email string `json:"email"`
}

// IssueTokenResponse представляет тело ответа с подписанным токеном
type IssueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken обрабатывает POST /jwt
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.IssueToken(req.Email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, IssueTokenResponse{Token: token})
}
