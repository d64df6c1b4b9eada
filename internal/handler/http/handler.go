package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/service"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

// Handler bundles the service layer with the HTTP transport. All routes,
// middleware and request handlers hang off this type.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler creates the HTTP handler over the given services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeMessage sends the uniform `{"message": "..."}` JSON body with the
// given status. Every user-visible failure goes through here so internals
// never leak to the caller.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// vacationIDFromURL parses the "{id}" route parameter as a positive int64.
func vacationIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidDataProvided
	}
	return id, nil
}
