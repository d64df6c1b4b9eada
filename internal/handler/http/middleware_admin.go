package http

import (
	"net/http"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

// adminOnly restricts a route to accounts holding the admin role. It runs
// after the auth middleware, so a missing role in the context means the
// route was wired outside the session gate and the request is rejected.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		role, ok := utils.GetUserRoleFromContext(r.Context())
		if !ok {
			log.Error().Msg("no role in request context")
			writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if role != models.RoleAdmin {
			log.Warn().Str("role", role).Msg("admin route denied")
			writeMessage(w, "forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
