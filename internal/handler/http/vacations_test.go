package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/service"
	"github.com/sunway-travel/vacation-booking/internal/store"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

// ---- Mock VacationService ----

type mockVacationService struct {
	listVacationsFn  func(ctx context.Context, userID int64) ([]models.VacationWithFollow, error)
	addVacationFn    func(ctx context.Context, vacation models.Vacation) (models.Vacation, error)
	editVacationFn   func(ctx context.Context, vacation models.Vacation) error
	removeVacationFn func(ctx context.Context, vacationID int64) error
}

func (m *mockVacationService) ListVacations(ctx context.Context, userID int64) ([]models.VacationWithFollow, error) {
	return m.listVacationsFn(ctx, userID)
}

func (m *mockVacationService) AddVacation(ctx context.Context, vacation models.Vacation) (models.Vacation, error) {
	return m.addVacationFn(ctx, vacation)
}

func (m *mockVacationService) EditVacation(ctx context.Context, vacation models.Vacation) error {
	return m.editVacationFn(ctx, vacation)
}

func (m *mockVacationService) RemoveVacation(ctx context.Context, vacationID int64) error {
	return m.removeVacationFn(ctx, vacationID)
}

// ---- Helpers ----

func newHandlerWithVacationService(svc service.VacationService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			Vacation: svc,
		},
	}
}

// withRouteID attaches a chi route context carrying the "{id}" parameter,
// as the router would when dispatching the request.
func withRouteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withUserID puts an authenticated user id into the request context, as the
// auth middleware would.
func withUserID(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

// ---- listVacations ----

func TestListVacations_Success(t *testing.T) {
	svc := &mockVacationService{
		listVacationsFn: func(_ context.Context, userID int64) ([]models.VacationWithFollow, error) {
			assert.Equal(t, int64(7), userID)
			return []models.VacationWithFollow{
				{Vacation: models.Vacation{VacationID: 1, Destination: "Lisbon"}, IsFollowed: true},
				{Vacation: models.Vacation{VacationID: 2, Destination: "Oslo"}, IsFollowed: false},
			}, nil
		},
	}

	h := newHandlerWithVacationService(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
	req = injectNopLogger(withUserID(req, 7))
	rec := httptest.NewRecorder()

	h.listVacations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var vacations []models.VacationWithFollow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vacations))
	require.Len(t, vacations, 2)
	assert.True(t, vacations[0].IsFollowed)
	assert.False(t, vacations[1].IsFollowed)
}

func TestListVacations_EmptyCatalogSerializesAsArray(t *testing.T) {
	svc := &mockVacationService{
		listVacationsFn: func(_ context.Context, _ int64) ([]models.VacationWithFollow, error) {
			return nil, nil
		},
	}

	h := newHandlerWithVacationService(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
	req = injectNopLogger(withUserID(req, 7))
	rec := httptest.NewRecorder()

	h.listVacations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListVacations_NoUserInContext(t *testing.T) {
	h := newHandlerWithVacationService(&mockVacationService{})
	req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.listVacations(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- addVacation ----

func TestAddVacation_Success(t *testing.T) {
	svc := &mockVacationService{
		addVacationFn: func(_ context.Context, v models.Vacation) (models.Vacation, error) {
			assert.Equal(t, "Lisbon", v.Destination)
			v.VacationID = 42
			return v, nil
		},
	}

	body := jsonBody(t, models.Vacation{
		Destination: "Lisbon",
		Description: "A week by the Tagus",
		StartDate:   models.NewDate(2026, time.October, 1),
		EndDate:     models.NewDate(2026, time.October, 8),
		Price:       1290.50,
		Image:       "lisbon.jpg",
	})

	h := newHandlerWithVacationService(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/vacations/add", strings.NewReader(body))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.addVacation(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.VacationCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "vacation added", resp.Message)
	assert.Equal(t, int64(42), resp.VacationID)
}

func TestAddVacation_InvalidJSON(t *testing.T) {
	h := newHandlerWithVacationService(&mockVacationService{})
	req := httptest.NewRequest(http.MethodPost, "/api/vacations/add", strings.NewReader("{"))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.addVacation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddVacation_MissingFields(t *testing.T) {
	svc := &mockVacationService{
		addVacationFn: func(_ context.Context, _ models.Vacation) (models.Vacation, error) {
			return models.Vacation{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithVacationService(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/vacations/add", strings.NewReader(`{"destination":"Lisbon"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.addVacation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- editVacation ----

func TestEditVacation_URLIDOverridesBody(t *testing.T) {
	svc := &mockVacationService{
		editVacationFn: func(_ context.Context, v models.Vacation) error {
			assert.Equal(t, int64(42), v.VacationID)
			return nil
		},
	}

	// body carries a different id; the route parameter wins
	body := `{"vacation_id": 999, "destination": "Porto"}`

	h := newHandlerWithVacationService(svc)
	req := httptest.NewRequest(http.MethodPut, "/api/vacations/42", strings.NewReader(body))
	req = injectNopLogger(withRouteID(req, "42"))
	rec := httptest.NewRecorder()

	h.editVacation(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "vacation updated", decodeMessage(t, rec))
}

func TestEditVacation_NotFound(t *testing.T) {
	svc := &mockVacationService{
		editVacationFn: func(_ context.Context, _ models.Vacation) error {
			return store.ErrVacationNotFound
		},
	}

	h := newHandlerWithVacationService(svc)
	req := httptest.NewRequest(http.MethodPut, "/api/vacations/404", strings.NewReader(`{"destination":"Porto"}`))
	req = injectNopLogger(withRouteID(req, "404"))
	rec := httptest.NewRecorder()

	h.editVacation(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditVacation_BadID(t *testing.T) {
	h := newHandlerWithVacationService(&mockVacationService{})
	req := httptest.NewRequest(http.MethodPut, "/api/vacations/abc", strings.NewReader(`{}`))
	req = injectNopLogger(withRouteID(req, "abc"))
	rec := httptest.NewRecorder()

	h.editVacation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid vacation id", decodeMessage(t, rec))
}

// ---- removeVacation ----

func TestRemoveVacation_Success(t *testing.T) {
	svc := &mockVacationService{
		removeVacationFn: func(_ context.Context, vacationID int64) error {
			assert.Equal(t, int64(42), vacationID)
			return nil
		},
	}

	h := newHandlerWithVacationService(svc)
	req := httptest.NewRequest(http.MethodDelete, "/api/vacations/42", nil)
	req = injectNopLogger(withRouteID(req, "42"))
	rec := httptest.NewRecorder()

	h.removeVacation(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "vacation deleted", decodeMessage(t, rec))
}

func TestRemoveVacation_NegativeID(t *testing.T) {
	h := newHandlerWithVacationService(&mockVacationService{})
	req := httptest.NewRequest(http.MethodDelete, "/api/vacations/-1", nil)
	req = injectNopLogger(withRouteID(req, "-1"))
	rec := httptest.NewRecorder()

	h.removeVacation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
