package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/service"
	"github.com/sunway-travel/vacation-booking/internal/store"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	_, err := h.services.Auth.RegisterUser(ctx, user, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeMessage(w, "email already exists", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeMessage(w, "user registered", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email/password")
			writeMessage(w, "invalid email or password", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", resp.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, resp, http.StatusOK)
}

// tokenValidate re-validates the presented credential and reports the
// session state. It is its own gate: the route is mounted outside the auth
// middleware because validation is exactly what it performs.
func (h *Handler) tokenValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		log.Err(err).Send()
		writeMessage(w, err.Error(), http.StatusUnauthorized)
		return
	}

	sessionUser, err := h.services.Auth.ValidateSession(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("session validation failed")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ValidateResponse{IsValid: true, User: sessionUser}, http.StatusOK)
}
