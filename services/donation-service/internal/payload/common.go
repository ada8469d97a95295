package payload

import (
	"time"

	"github.com/vasapolrittideah/food-share-api/shared/validator"
)

// ErrorResponse is the body of every non-2xx response. Errors is only set for validation failures.
type ErrorResponse struct {
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}
