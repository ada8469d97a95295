package handler

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/food-share-api/shared/auth"
)

type contextKey struct{}

var userIDKey = contextKey{}

// authenticate requires a valid bearer token and stores its user id in the request context.
// A missing header is rejected before any verification is attempted.
func (h *donationHTTPHandler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, r, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			respondError(w, r, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := h.jwtAuth.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("rejected access token")

			if errors.Is(err, auth.ErrExpiredToken) {
				respondError(w, r, http.StatusUnauthorized, "Token has expired")
				return
			}

			respondError(w, r, http.StatusUnauthorized, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the user id stored by authenticate.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// requestLogger tags the request-scoped logger with the id set by middleware.RequestID.
func (h *donationHTTPHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			logger := hlog.FromRequest(r).With().Str("request_id", id).Logger()
			r = r.WithContext(logger.WithContext(r.Context()))
		}

		next.ServeHTTP(w, r)
	})
}

func (h *donationHTTPHandler) accessLog(next http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	})(next)
}

// recoverer turns a panic into a 500 response and logs the stack instead of echoing it.
func (h *donationHTTPHandler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			respondError(w, r, http.StatusInternalServerError, "Server error")
		}()

		next.ServeHTTP(w, r)
	})
}
