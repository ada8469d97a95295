package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/payload"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
	"github.com/vasapolrittideah/food-share-api/shared/validator"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, payload.ErrorResponse{Message: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}

	return err
}

// respondValidationError answers 400 with the joined messages and, for field failures,
// the per-field breakdown.
func respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	resp := payload.ErrorResponse{Message: err.Error()}

	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = verr.Fields
	}

	respondJSON(w, r, http.StatusBadRequest, resp)
}

// respondUsecaseError maps a use case failure onto a status code and a short message.
// Anything unrecognised is logged and answered with a generic 500.
func (h *donationHTTPHandler) respondUsecaseError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidDonation):
		respondError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidUserType):
		respondError(w, r, http.StatusBadRequest, "User type must be donor or receiver")
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		respondError(w, r, http.StatusBadRequest, "User already exists")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		respondError(w, r, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, usecase.ErrDonationNotAvailable):
		respondError(w, r, http.StatusBadRequest, "Donation is no longer available")
	case errors.Is(err, usecase.ErrNotDonor):
		respondError(w, r, http.StatusForbidden, "Only donors can perform this action")
	case errors.Is(err, usecase.ErrNotReceiver):
		respondError(w, r, http.StatusForbidden, "Only receivers can perform this action")
	case errors.Is(err, usecase.ErrUserNotFound):
		respondError(w, r, http.StatusNotFound, "User not found")
	case errors.Is(err, usecase.ErrDonationNotFound):
		respondError(w, r, http.StatusNotFound, "Donation not found")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("failed to " + action)
		respondError(w, r, http.StatusInternalServerError, "Server error")
	}
}
