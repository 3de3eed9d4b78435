package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/infra/pubsub"
	mockUsecase "market/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockAdvertisementEventUsecase) {
	t.Helper()

	eventsUC := mockUsecase.NewMockAdvertisementEventUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		EventsUC: eventsUC,
	}), eventsUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/advertisements"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event *service.AdvertisementEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.AdvertisementEvent{
		RequestID:           "req-from-event",
		Type:                service.AdvertisementDeleted,
		AdvertisementUUID:   "0b8f3c1e-8a57-4e0f-9a53-8d6f0f2b1c11",
		OrphanedAttachments: []string{"a.png"},
	}

	t.Run("processes the event with the attribute request id", func(t *testing.T) {
		h, eventsUC := newPushHandler(t)
		eventsUC.EXPECT().
			HandleAdvertisementEvent(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, got *service.AdvertisementEvent) {
				assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
				assert.Equal(t, event.AdvertisementUUID, got.AdvertisementUUID)
				assert.Equal(t, []string{"a.png"}, got.OrphanedAttachments)
			}).
			Return(nil).Once()

		rec := doPush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-from-attributes"}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to the event request id", func(t *testing.T) {
		h, eventsUC := newPushHandler(t)
		eventsUC.EXPECT().
			HandleAdvertisementEvent(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, _ *service.AdvertisementEvent) {
				assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil).Once()

		rec := doPush(h, pushBody(t, encodeEvent(t, event), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("server errors are redelivered", func(t *testing.T) {
		h, eventsUC := newPushHandler(t)
		eventsUC.EXPECT().HandleAdvertisementEvent(mock.Anything, mock.Anything).
			Return(errors.New("bucket unavailable")).Once()

		rec := doPush(h, pushBody(t, encodeEvent(t, event), nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalid events are acknowledged", func(t *testing.T) {
		h, eventsUC := newPushHandler(t)
		eventsUC.EXPECT().HandleAdvertisementEvent(mock.Anything, mock.Anything).
			Return(domainerrors.ErrValidationFailed.WithDetails("advertisement_uuid: is not a UUID")).Once()

		rec := doPush(h, pushBody(t, encodeEvent(t, event), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed messages are rejected", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"not json", "{"},
			{"data is not base64", pushBody(t, "%%%", nil)},
			{"data is not an event", pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")), nil)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h, _ := newPushHandler(t)

				rec := doPush(h, tt.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("unverified tokens are refused", func(t *testing.T) {
		h, _ := newPushHandler(t)
		h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

		rec := doPush(h, pushBody(t, encodeEvent(t, event), nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		env      string
		want     bool
	}{
		{"google in production", "google", "production", true},
		{"google in develop", "google", config.EnvDevelop, false},
		{"local provider", "local", "production", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
			assert.Equal(t, tt.want, h.verify != nil)
		})
	}
}

func TestIDTokenVerifier_RejectsMissingBearer(t *testing.T) {
	verify := newIDTokenVerifier("")

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verify(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verify(req))

	req.Header.Set(echo.HeaderAuthorization, "Bearer ")
	require.Error(t, verify(req))
}

func TestRequestURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://worker.internal/push?x=1", nil)
	assert.Equal(t, "http://worker.internal/push", requestURL(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://worker.internal/push", requestURL(req))
}
