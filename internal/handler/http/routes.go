package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. Trace IDs and request logging wrap every route;
// the vacation and analytics surfaces additionally pass through the session
// gate, and mutating catalog routes require the admin role on top.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/users/token-validate", h.tokenValidate)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/vacations", h.listVacations)
		r.Post("/api/vacations/{id}/follow", h.follow)
		r.Delete("/api/vacations/{id}/follow", h.unfollow)

		r.Group(func(admin chi.Router) {
			admin.Use(h.adminOnly)

			admin.Post("/api/vacations/add", h.addVacation)
			admin.Put("/api/vacations/{id}", h.editVacation)
			admin.Delete("/api/vacations/{id}", h.removeVacation)

			admin.Get("/api/vacations/stats", h.destinationStats)
			admin.Get("/api/vacations/{id}/stats", h.vacationStats)
			admin.Get("/api/analytics/dashboard", h.dashboard)
		})
	})

	return router
}
