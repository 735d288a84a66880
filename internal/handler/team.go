package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/workday-backend/internal/domain"
	"github.com/aidar/workday-backend/internal/service"
)

// TeamHandler обрабатывает эндпоинты записей о членстве в командах
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// AddMember обрабатывает POST /team
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var m domain.TeamMembership
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.teamService.AddMember(r.Context(), &m)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, result)
}

// GetByEmployer обрабатывает GET /team/{email}: записи, созданные работодателем
func (h *TeamHandler) GetByEmployer(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	members, err := h.teamService.GetByEmployer(r.Context(), email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, members)
}

// GetMyTeam обрабатывает GET /myTeam/{email}: коллеги участника
func (h *TeamHandler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	members, err := h.teamService.GetMyTeam(r.Context(), email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, members)
}

// GetHREmail обрабатывает GET /hrEmail/{email}: запись о членстве участника
// со ссылкой на email работодателя
func (h *TeamHandler) GetHREmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	membership, err := h.teamService.GetMembership(r.Context(), email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, membership)
}

// RemoveMember обрабатывает DELETE /team/{id}
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.teamService.RemoveMember(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}
