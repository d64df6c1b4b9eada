package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunway-travel/vacation-booking/internal/service"
	"github.com/sunway-travel/vacation-booking/internal/store"
	"github.com/sunway-travel/vacation-booking/models"
)

// ---- Mock AuthService ----

// mockAuthService implements service.AuthService for unit tests. Each method
// field can be overridden per test case.
type mockAuthService struct {
	registerUserFn    func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn           func(ctx context.Context, email, password string) (models.LoginResponse, error)
	validateSessionFn func(ctx context.Context, rawToken string) (models.SessionUser, error)
	parseSessionFn    func(ctx context.Context, rawToken string) (*models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, rawToken string) (models.SessionUser, error) {
	return m.validateSessionFn(ctx, rawToken)
}

func (m *mockAuthService) ParseSession(ctx context.Context, rawToken string) (*models.Token, error) {
	return m.parseSessionFn(ctx, rawToken)
}

// ---- Helpers ----

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

var validRegisterBody = registerRequest{
	FirstName: "Alice",
	LastName:  "Nguyen",
	Email:     "alice@example.com",
	Password:  "s3cret-pass",
}

// ---- register ----

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User, password string) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "s3cret-pass", password)
			u.UserID = 1
			return u, nil
		},
	}

	h := newHandlerWithAuthService(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(jsonBody(t, validRegisterBody)))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user registered", decodeMessage(t, rec))
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader("{not json"))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuthService(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{"email":"a@b.c"}`))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeMessage(t, rec))
}

func TestRegister_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuthService(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(jsonBody(t, validRegisterBody)))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email already exists", decodeMessage(t, rec))
}

func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, assert.AnError
		},
	}

	h := newHandlerWithAuthService(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(jsonBody(t, validRegisterBody)))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// internals must not leak into the response body
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.LoginResponse, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "s3cret-pass", password)
			return models.LoginResponse{
				Token: signedToken,
				User:  models.SessionUser{ID: 1, Name: "Alice", Role: models.RoleUser},
			}, nil
		},
	}

	h := newHandlerWithAuthService(auth)
	body := jsonBody(t, loginRequest{Email: "alice@example.com", Password: "s3cret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, models.RoleUser, resp.User.Role)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.LoginResponse, error) {
			return models.LoginResponse{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuthService(auth)
	body := jsonBody(t, loginRequest{Email: "alice@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeMessage(t, rec))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader("not-json"))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- tokenValidate ----

func TestTokenValidate_Success(t *testing.T) {
	auth := &mockAuthService{
		validateSessionFn: func(_ context.Context, rawToken string) (models.SessionUser, error) {
			assert.Equal(t, "live-token", rawToken)
			return models.SessionUser{ID: 7, Name: "Bob", Role: models.RoleUser}, nil
		},
	}

	h := newHandlerWithAuthService(auth)
	req := httptest.NewRequest(http.MethodGet, "/api/users/token-validate", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.tokenValidate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsValid)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestTokenValidate_NoHeader(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/api/users/token-validate", nil)
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.tokenValidate(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestTokenValidate_ExpiredSession(t *testing.T) {
	auth := &mockAuthService{
		validateSessionFn: func(_ context.Context, _ string) (models.SessionUser, error) {
			return models.SessionUser{}, service.ErrSessionExpired
		},
	}

	h := newHandlerWithAuthService(auth)
	req := httptest.NewRequest(http.MethodGet, "/api/users/token-validate", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.tokenValidate(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrSessionExpired.Error())
}
