package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/workday-backend/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой: { "message": string }
type ErrorResponse struct {
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Message: message})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrAssetNameRequired),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidPrice):
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserExists):
		RespondWithError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrAssetNotFound):
		RespondWithError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		RespondWithError(w, r, http.StatusUnauthorized, "unauthorized")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
