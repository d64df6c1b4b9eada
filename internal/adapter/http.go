package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/sunway-travel/vacation-booking/internal/config"
	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account details to
// POST /api/users/register. Registration does not log the account in; the
// caller follows up with Login.
func (h *httpServerAdapter) Register(ctx context.Context, firstName, lastName, email, password string) error {
	body := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   password,
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/users/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/users/login, stores the returned token via SetToken and returns
// the session user for display.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.SessionUser, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&loginResp).
		Post("/api/users/login")
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	h.SetToken(loginResp.Token)
	return loginResp.User, nil
}

// ValidateToken implements [ServerAdapter]. It GETs
// GET /api/users/token-validate with the held bearer token. A successful call
// also refreshes the server-side sliding expiry as a side effect.
func (h *httpServerAdapter) ValidateToken(ctx context.Context) (models.ValidateResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/token-validate")
	if err != nil {
		return models.ValidateResponse{}, fmt.Errorf("token validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidateResponse{}, err
	}

	var vr models.ValidateResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return models.ValidateResponse{}, fmt.Errorf("decode token validate response: %w", err)
	}

	return vr, nil
}

// ListVacations implements [ServerAdapter]. It GETs GET /api/vacations and
// decodes the follow-annotated catalog. Requires a valid bearer token.
func (h *httpServerAdapter) ListVacations(ctx context.Context) ([]models.VacationWithFollow, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vacations")
	if err != nil {
		return nil, fmt.Errorf("list vacations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var vacations []models.VacationWithFollow
	if err = json.Unmarshal(resp.Body(), &vacations); err != nil {
		return nil, fmt.Errorf("decode vacations response: %w", err)
	}

	return vacations, nil
}

// Follow implements [ServerAdapter]. It POSTs to
// POST /api/vacations/{id}/follow. Requires a valid bearer token.
func (h *httpServerAdapter) Follow(ctx context.Context, vacationID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", fmt.Sprintf("%d", vacationID)).
		Post("/api/vacations/{id}/follow")
	if err != nil {
		return fmt.Errorf("follow request: %w", err)
	}

	return mapHTTPError(resp)
}

// Unfollow implements [ServerAdapter]. It DELETEs
// DELETE /api/vacations/{id}/follow. Requires a valid bearer token.
func (h *httpServerAdapter) Unfollow(ctx context.Context, vacationID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", fmt.Sprintf("%d", vacationID)).
		Delete("/api/vacations/{id}/follow")
	if err != nil {
		return fmt.Errorf("unfollow request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
