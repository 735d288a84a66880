package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/workday-backend/internal/domain"
	"github.com/aidar/workday-backend/internal/service"
)

// AssetHandler обрабатывает эндпоинты активов
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler создает новый AssetHandler
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// CreateAsset обрабатывает POST /asset
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var asset domain.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assetService.CreateAsset(r.Context(), &asset)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, result)
}

// ListAssets обрабатывает GET /assets с опциональными фильтрами:
// search, stockStatus, category, sortOrder
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AssetFilter{
		Search:      q.Get("search"),
		StockStatus: q.Get("stockStatus"),
		Category:    q.Get("category"),
		SortOrder:   q.Get("sortOrder"),
	}

	assets, err := h.assetService.ListAssets(r.Context(), filter)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, assets)
}

// GetAsset обрабатывает GET /asset/{id}
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	asset, err := h.assetService.GetAsset(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, asset)
}

// ReplaceAsset обрабатывает PUT /asset/{id}: полная перезапись документа,
// вставка если документа нет (upsert)
func (h *AssetHandler) ReplaceAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var asset domain.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assetService.ReplaceAsset(r.Context(), id, &asset)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// UpdateAssetFields обрабатывает PUT /request-update/{id}: слияние
// присланных полей с документом актива
func (h *AssetHandler) UpdateAssetFields(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var upd domain.AssetUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assetService.UpdateAssetFields(r.Context(), id, upd)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// RequestAsset обрабатывает PUT /request-asset/{id}: уменьшение количества
// на 1 в рамках заявки, с остановкой на нуле
func (h *AssetHandler) RequestAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.assetService.RequestAsset(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// DeleteAsset обрабатывает DELETE /asset/{id}
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.assetService.DeleteAsset(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}
