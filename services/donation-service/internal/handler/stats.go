package handler

import (
	"net/http"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/payload"
)

func (h *donationHTTPHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.GetStats(r.Context())
	if err != nil {
		h.respondUsecaseError(w, r, err, "compute stats")
		return
	}

	respondJSON(w, r, http.StatusOK, payload.NewStatsResponse(stats))
}
