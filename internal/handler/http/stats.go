package http

import (
	"net/http"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

func (h *Handler) destinationStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.Analytics.DestinationStats(ctx)
	if err != nil {
		log.Err(err).Msg("error loading destination stats")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	if stats == nil {
		stats = []models.DestinationStat{}
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) vacationStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	vacationID, err := vacationIDFromURL(r)
	if err != nil {
		writeMessage(w, "invalid vacation id", http.StatusBadRequest)
		return
	}

	stats, err := h.services.Analytics.VacationStats(ctx, vacationID)
	if err != nil {
		log.Err(err).Int64("vacation_id", vacationID).Msg("error loading vacation stats")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	dashboard, err := h.services.Analytics.Dashboard(ctx)
	if err != nil {
		log.Err(err).Msg("error loading dashboard")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}
