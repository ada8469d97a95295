package handler

import (
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/payload"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
)

func (h *donationHTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	user, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		UserType: model.UserType(req.UserType),
	})
	if err != nil {
		h.respondUsecaseError(w, r, err, "register user")
		return
	}

	hlog.FromRequest(r).Info().Str("user_id", user.ID.Hex()).Str("user_type", string(user.UserType)).Msg("user registered")

	respondJSON(w, r, http.StatusCreated, payload.RegisterResponse{
		Message: "User registered successfully",
		User:    payload.NewUser(user),
	})
}

func (h *donationHTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	result, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondUsecaseError(w, r, err, "log in")
		return
	}

	respondJSON(w, r, http.StatusOK, payload.LoginResponse{
		Token: result.Token,
		User:  payload.NewUser(result.User),
	})
}
