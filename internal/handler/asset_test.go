package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/workday-backend/internal/domain"
	"github.com/aidar/workday-backend/internal/service"
)

// fakeAssetRepo реализует repository.AssetRepository в памяти
type fakeAssetRepo struct {
	assets     map[uuid.UUID]*domain.Asset
	lastFilter domain.AssetFilter
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[uuid.UUID]*domain.Asset)}
}

func (f *fakeAssetRepo) Create(_ context.Context, a *domain.Asset) (*domain.InsertOneResult, error) {
	stored := *a
	stored.ID = uuid.New()
	f.assets[stored.ID] = &stored
	return &domain.InsertOneResult{InsertedID: stored.ID.String()}, nil
}

func (f *fakeAssetRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Asset, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	return a, nil
}

func (f *fakeAssetRepo) List(_ context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
	f.lastFilter = filter
	result := make([]*domain.Asset, 0, len(f.assets))
	for _, a := range f.assets {
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAssetRepo) Replace(_ context.Context, id uuid.UUID, a *domain.Asset) (*domain.UpdateResult, error) {
	stored := *a
	stored.ID = id
	_, existed := f.assets[id]
	f.assets[id] = &stored
	if existed {
		return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	upserted := id.String()
	return &domain.UpdateResult{UpsertedID: &upserted}, nil
}

func (f *fakeAssetRepo) UpdateFields(_ context.Context, id uuid.UUID, upd domain.AssetUpdate) (*domain.UpdateResult, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	if upd.AssetName != nil {
		a.AssetName = *upd.AssetName
	}
	if upd.Quantity != nil {
		a.Quantity = *upd.Quantity
	}
	return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeAssetRepo) DecrementQuantity(_ context.Context, id uuid.UUID) (*domain.UpdateResult, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	if a.Quantity > 0 {
		a.Quantity--
		return &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &domain.UpdateResult{MatchedCount: 1}, nil
}

func (f *fakeAssetRepo) Delete(_ context.Context, id uuid.UUID) (*domain.DeleteResult, error) {
	if _, ok := f.assets[id]; !ok {
		return &domain.DeleteResult{}, nil
	}
	delete(f.assets, id)
	return &domain.DeleteResult{DeletedCount: 1}, nil
}

func decodeBody(rec *httptest.ResponseRecorder, dst any) error {
	return json.Unmarshal(rec.Body.Bytes(), dst)
}

func newAssetRouter() (*chi.Mux, *fakeAssetRepo) {
	repo := newFakeAssetRepo()
	h := NewAssetHandler(service.NewAssetService(repo))

	r := chi.NewRouter()
	r.Post("/asset", h.CreateAsset)
	r.Get("/assets", h.ListAssets)
	r.Get("/asset/{id}", h.GetAsset)
	r.Put("/asset/{id}", h.ReplaceAsset)
	r.Delete("/asset/{id}", h.DeleteAsset)
	r.Put("/request-asset/{id}", h.RequestAsset)
	r.Put("/request-update/{id}", h.UpdateAssetFields)

	return r, repo
}

func TestAssetHandler_ListAssets_ParsesQueryFilters(t *testing.T) {
	router, repo := newAssetRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/assets?search=lap&stockStatus=available&category=electronics&sortOrder=high-to-low", nil)

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AssetFilter{
		Search:      "lap",
		StockStatus: domain.StockStatusAvailable,
		Category:    "electronics",
		SortOrder:   domain.SortOrderHighToLow,
	}, repo.lastFilter)
}

func TestAssetHandler_GetAsset_BadID(t *testing.T) {
	router, _ := newAssetRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/asset/42", nil)

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"invalid id format"}`, rec.Body.String())
}

func TestAssetHandler_RequestAsset_NotFound(t *testing.T) {
	router, _ := newAssetRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/request-asset/"+uuid.NewString(), nil)

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssetHandler_Lifecycle(t *testing.T) {
	router, _ := newAssetRouter()

	// Создание
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/asset", strings.NewReader(`{"assetName":"Laptop","category":"electronics","quantity":1}`))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.InsertOneResult
	require.NoError(t, decodeBody(rec, &created))
	require.NotEmpty(t, created.InsertedID)

	// Заявка списывает единственную единицу
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/request-asset/"+created.InsertedID, nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Повторная заявка на нулевом остатке ничего не меняет
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/request-asset/"+created.InsertedID, nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.UpdateResult
	require.NoError(t, decodeBody(rec, &result))
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(0), result.ModifiedCount)

	// Удаление и последующий 404
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/asset/"+created.InsertedID, nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/asset/"+created.InsertedID, nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
