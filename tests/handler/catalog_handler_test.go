package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/http/handler"
	"github.com/bookwell/booking-api/internal/repository"
	"github.com/bookwell/booking-api/internal/service"
	"github.com/bookwell/booking-api/tests/testutil"
)

func setupCatalogHandlerTestDB(t *testing.T) *gorm.DB {
	db := testutil.SetupCleanTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestData(t, db)
	})
	return db
}

func createCatalogHandler(db *gorm.DB) *handler.CatalogHandler {
	logger := zap.NewNop()
	catalogService := service.NewCatalogService(repository.NewCatalogRepository(db), logger)
	return handler.NewCatalogHandler(catalogService, logger)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCatalogHandler_Create(t *testing.T) {
	db := setupCatalogHandlerTestDB(t)
	h := createCatalogHandler(db)

	body := `{"name":"Haircut","category":"Hair","unitPrice":6000,"durationMinutes":45,"pricingMode":"fixed"}`
	req := httptest.NewRequest(http.MethodPost, "/services", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var dto domain.ServiceDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, "Haircut", dto.Name)
	assert.Equal(t, int64(6000), dto.UnitPrice)
	assert.NotEqual(t, uuid.Nil, dto.ID)
}

func TestCatalogHandler_Create_MissingName(t *testing.T) {
	db := setupCatalogHandlerTestDB(t)
	h := createCatalogHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/services", bytes.NewBufferString(`{"unitPrice":6000}`))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Errors, "name")
}

func TestCatalogHandler_GetByID(t *testing.T) {
	db := setupCatalogHandlerTestDB(t)
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	h := createCatalogHandler(db)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/services/x", nil), "id", svcRow.ID.String())
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var dto domain.ServiceDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, svcRow.ID, dto.ID)
}

func TestCatalogHandler_GetByID_NotFound(t *testing.T) {
	db := setupCatalogHandlerTestDB(t)
	h := createCatalogHandler(db)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/services/x", nil), "id", uuid.New().String())
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCatalogHandler_List(t *testing.T) {
	db := setupCatalogHandlerTestDB(t)
	testutil.CreateTestService(t, db, "Haircut", 6000)
	testutil.CreateTestService(t, db, "Color treatment", 14500)
	h := createCatalogHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/services?page=1&pageSize=20", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var result domain.PaginatedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, int64(2), result.Total)
}

func TestCatalogHandler_Delete(t *testing.T) {
	db := setupCatalogHandlerTestDB(t)
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	h := createCatalogHandler(db)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/services/x", nil), "id", svcRow.ID.String())
	rr := httptest.NewRecorder()
	h.Delete(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/services/x", nil), "id", svcRow.ID.String())
	rr = httptest.NewRecorder()
	h.GetByID(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
