package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/payload"
)

const healthCheckTimeout = 2 * time.Second

func (h *donationHTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("database ping failed")

		respondJSON(w, r, http.StatusServiceUnavailable, payload.HealthResponse{
			Status:    "ERROR",
			Database:  "Disconnected",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	respondJSON(w, r, http.StatusOK, payload.HealthResponse{
		Status:    "OK",
		Database:  "Connected",
		Timestamp: time.Now().UTC(),
	})
}
