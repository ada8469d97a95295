package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository/inmemory"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
	"github.com/vasapolrittideah/food-share-api/shared/auth"
	"github.com/vasapolrittideah/food-share-api/shared/validator"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context, *readpref.ReadPref) error {
	return p.err
}

type testServer struct {
	router  http.Handler
	jwtAuth *auth.JWTAuthenticator
	deps    Dependencies
}

func newTestServer(t *testing.T, db DatabasePinger) *testServer {
	t.Helper()

	return newTestServerWithLogger(t, db, zerolog.Nop())
}

func newTestServerWithLogger(t *testing.T, db DatabasePinger, logger zerolog.Logger) *testServer {
	t.Helper()

	jwtAuth, err := auth.NewJWTAuthenticator(testSecret)
	require.NoError(t, err)

	v, err := validator.New()
	require.NoError(t, err)

	userRepo := inmemory.NewUserRepository()
	donationRepo := inmemory.NewDonationRepository()

	deps := Dependencies{
		AuthUsecase:     usecase.NewAuthUsecase(userRepo, jwtAuth),
		DonationUsecase: usecase.NewDonationUsecase(userRepo, donationRepo, v),
		StatsUsecase:    usecase.NewStatsUsecase(userRepo, donationRepo),
		JWTAuth:         jwtAuth,
		Validator:       v,
		DB:              db,
		Logger:          &logger,
	}

	return &testServer{router: NewRouter(deps), jwtAuth: jwtAuth, deps: deps}
}

// do sends a request through the router. body may be nil, a string, or any JSON-encodable value.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) register(t *testing.T, name, email, userType string) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
		"phone":    "555-0100",
		"userType": userType,
		"address":  "1 Main St",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Message string `json:"message"`
	}
	decode(t, rec, &resp)

	return resp.Message
}

func breadBody() map[string]string {
	return map[string]string{
		"foodName":      "Bread",
		"quantity":      "5 loaves",
		"category":      "Bakery",
		"pickupAddress": "1 Main St",
		"expiryTime":    "2025-01-01T18:00",
	}
}

type donationJSON struct {
	ID           string `json:"_id"`
	FoodName     string `json:"foodName"`
	Status       string `json:"status"`
	DonorName    string `json:"donorName"`
	ReceiverID   string `json:"receiverId"`
	ReceiverName string `json:"receiverName"`
}

func containsFood(donations []donationJSON, food string) bool {
	for _, d := range donations {
		if d.FoodName == food {
			return true
		}
	}

	return false
}
