package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"market/internal/delivery/api/response"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "client error keeps details",
			err:         errors.Wrap(domainerrors.ErrAdvertisementNotFound.WithDetails("advertisement 42"), "load"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "ADVERTISEMENT_NOT_FOUND",
			wantDetails: "advertisement 42",
		},
		{
			name:       "ownership violation hides details",
			err:        domainerrors.ErrAdvertisementOwnershipViolation.WithDetails("owner 7"),
			wantStatus: http.StatusForbidden,
			wantCode:   "ADVERTISEMENT_OWNERSHIP_VIOLATION",
		},
		{
			name:       "database failure",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to search"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "body limit",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "PAYLOAD_TOO_LARGE",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "ROUTE_NOT_FOUND",
		},
		{
			name:       "plain error",
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/advertisements", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "disk full")
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}
