package http

import (
	"net/http"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	vacationID, err := vacationIDFromURL(r)
	if err != nil {
		writeMessage(w, "invalid vacation id", http.StatusBadRequest)
		return
	}

	if err := h.services.Follow.Follow(ctx, userID, vacationID); err != nil {
		log.Err(err).Int64("vacation_id", vacationID).Msg("error following vacation")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.FollowResponse{Followed: true, VacationID: vacationID}, http.StatusOK)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	vacationID, err := vacationIDFromURL(r)
	if err != nil {
		writeMessage(w, "invalid vacation id", http.StatusBadRequest)
		return
	}

	if err := h.services.Follow.Unfollow(ctx, userID, vacationID); err != nil {
		log.Err(err).Int64("vacation_id", vacationID).Msg("error unfollowing vacation")
		writeMessage(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UnfollowResponse{Unfollowed: true, VacationID: vacationID}, http.StatusOK)
}
