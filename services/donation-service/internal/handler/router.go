package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
)

// NewRouter mounts every API route on a chi router.
func NewRouter(deps Dependencies) http.Handler {
	h := newDonationHTTPHandler(deps)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(*h.logger))
	r.Use(h.requestLogger)
	r.Use(h.accessLog)
	r.Use(h.recoverer)

	// Registered before the sub-routers so they inherit them.
	r.NotFound(h.routeNotFound)
	r.MethodNotAllowed(h.routeNotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/stats", h.GetStats)

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", h.ListAvailableDonations)

			r.Group(func(r chi.Router) {
				r.Use(h.authenticate)

				r.Post("/", h.CreateDonation)
				r.Get("/my-donations", h.ListMyDonations)
				r.Get("/claimed", h.ListClaimedDonations)
				r.Put("/{id}/claim", h.ClaimDonation)
			})
		})
	})

	return r
}

func (h *donationHTTPHandler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, "Route not found")
}
