package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		wantStatus   int
		wantStatusJS string
		wantDatabase string
	}{
		{name: "connected", wantStatus: http.StatusOK, wantStatusJS: "OK", wantDatabase: "Connected"},
		{name: "disconnected", pingErr: errors.New("server selection timeout"), wantStatus: http.StatusServiceUnavailable, wantStatusJS: "ERROR", wantDatabase: "Disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, fakePinger{err: tt.pingErr})

			rec := s.do(t, http.MethodGet, "/api/health", "", nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Status    string `json:"status"`
				Database  string `json:"database"`
				Timestamp string `json:"timestamp"`
			}
			decode(t, rec, &body)
			assert.Equal(t, tt.wantStatusJS, body.Status)
			assert.Equal(t, tt.wantDatabase, body.Database)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}
