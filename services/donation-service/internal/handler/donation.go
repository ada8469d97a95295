package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/payload"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
)

// CreateDonation resolves the caller's role before looking at the body, so a receiver is
// refused with 403 whatever was sent. An empty body is treated as an empty object.
func (h *donationHTTPHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Token is not valid")
		return
	}

	var req payload.CreateDonationRequest
	decodeErr := decodeJSON(w, r, &req)
	if errors.Is(decodeErr, errEmptyBody) {
		decodeErr = nil
	}

	user, err := h.authUsecase.GetUser(r.Context(), userID)
	if err != nil {
		h.respondUsecaseError(w, r, err, "resolve donor")
		return
	}
	if user.UserType != model.UserTypeDonor {
		h.respondUsecaseError(w, r, usecase.ErrNotDonor, "create donation")
		return
	}

	if decodeErr != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	donation, err := h.donationUsecase.CreateDonation(r.Context(), userID, usecase.CreateDonationParams{
		FoodName:      req.FoodName,
		Quantity:      req.Quantity,
		Category:      req.Category,
		Description:   req.Description,
		PickupAddress: req.PickupAddress,
		ExpiryTime:    req.ExpiryTime,
	})
	if err != nil {
		h.respondUsecaseError(w, r, err, "create donation")
		return
	}

	respondJSON(w, r, http.StatusCreated, payload.DonationResponse{
		Message:  "Donation created successfully",
		Donation: payload.NewDonation(donation),
	})
}

func (h *donationHTTPHandler) ListAvailableDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationUsecase.ListAvailableDonations(r.Context())
	if err != nil {
		h.respondUsecaseError(w, r, err, "list available donations")
		return
	}

	respondJSON(w, r, http.StatusOK, payload.NewDonations(donations))
}

func (h *donationHTTPHandler) ListMyDonations(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Token is not valid")
		return
	}

	donations, err := h.donationUsecase.ListDonorDonations(r.Context(), userID)
	if err != nil {
		h.respondUsecaseError(w, r, err, "list donor donations")
		return
	}

	respondJSON(w, r, http.StatusOK, payload.NewDonations(donations))
}

func (h *donationHTTPHandler) ListClaimedDonations(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Token is not valid")
		return
	}

	donations, err := h.donationUsecase.ListClaimedDonations(r.Context(), userID)
	if err != nil {
		h.respondUsecaseError(w, r, err, "list claimed donations")
		return
	}

	respondJSON(w, r, http.StatusOK, payload.NewDonations(donations))
}

func (h *donationHTTPHandler) ClaimDonation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Token is not valid")
		return
	}

	donation, err := h.donationUsecase.ClaimDonation(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondUsecaseError(w, r, err, "claim donation")
		return
	}

	hlog.FromRequest(r).Info().
		Str("donation_id", donation.ID.Hex()).
		Str("receiver_id", userID).
		Msg("donation claimed")

	respondJSON(w, r, http.StatusOK, payload.DonationResponse{
		Message:  "Donation claimed successfully",
		Donation: payload.NewDonation(donation),
	})
}
