package http

import (
	"encoding/json"
	"net/http"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

func (h *Handler) listVacations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	vacations, err := h.services.Vacation.ListVacations(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error listing vacations")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	// An empty catalog serializes as [] rather than null.
	if vacations == nil {
		vacations = []models.VacationWithFollow{}
	}

	utils.WriteJSON(w, vacations, http.StatusOK)
}

func (h *Handler) addVacation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var vacation models.Vacation
	if err := json.NewDecoder(r.Body).Decode(&vacation); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Vacation.AddVacation(ctx, vacation)
	if err != nil {
		log.Err(err).Msg("error adding vacation")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VacationCreatedResponse{
		Message:    "vacation added",
		VacationID: created.VacationID,
	}, http.StatusCreated)
}

func (h *Handler) editVacation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vacationID, err := vacationIDFromURL(r)
	if err != nil {
		writeMessage(w, "invalid vacation id", http.StatusBadRequest)
		return
	}

	var vacation models.Vacation
	if err := json.NewDecoder(r.Body).Decode(&vacation); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	vacation.VacationID = vacationID

	if err := h.services.Vacation.EditVacation(ctx, vacation); err != nil {
		log.Err(err).Int64("vacation_id", vacationID).Msg("error editing vacation")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	writeMessage(w, "vacation updated", http.StatusOK)
}

func (h *Handler) removeVacation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vacationID, err := vacationIDFromURL(r)
	if err != nil {
		writeMessage(w, "invalid vacation id", http.StatusBadRequest)
		return
	}

	if err := h.services.Vacation.RemoveVacation(ctx, vacationID); err != nil {
		log.Err(err).Int64("vacation_id", vacationID).Msg("error removing vacation")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	writeMessage(w, "vacation deleted", http.StatusOK)
}
