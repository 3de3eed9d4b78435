package handler

import (
	"context"
	"log/slog"
	"net/http"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/infra/pubsub"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandler applies advertisement events delivered by Pub/Sub push
type PushHandler struct {
	verify   tokenVerifier
	logger   *slog.Logger
	eventsUC usecase.AdvertisementEventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	EventsUC usecase.AdvertisementEventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:   params.Logger,
		eventsUC: params.EventsUC,
	}

	// Google signs push requests; other providers are local only
	if ps := params.Config.PubSub; ps != nil && ps.Provider == pubsub.ProviderGoogle && params.Config.Env.Env != config.EnvDevelop {
		h.verify = newIDTokenVerifier(ps.PushAudience)
	}

	return h
}

// HandlePush applies one pushed event. Pub/Sub redelivers on any non-2xx
// answer, so 503 is reserved for failures worth retrying.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode advertisement event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing advertisement event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("type", string(event.Type)),
		slog.String("uuid", event.AdvertisementUUID),
		slog.Int("orphaned_attachments", len(event.OrphanedAttachments)),
	)

	err = h.eventsUC.HandleAdvertisementEvent(ctx, event)
	if err == nil {
		reqLogger.Info("[Worker] Advertisement event processed", slog.String("uuid", event.AdvertisementUUID))

		return c.NoContent(http.StatusOK)
	}

	// Only server errors can succeed on redelivery; anything else is acknowledged.
	retryable := domainerrors.KindOf(err) == domainerrors.KindServerError
	reqLogger.Error("[Worker] Failed to process advertisement event",
		slog.String("uuid", event.AdvertisementUUID),
		slog.Any("error", err),
		slog.Bool("retryable", retryable),
	)
	if retryable {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the event field, then
// the request context, and generates one as a last resort.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.AdvertisementEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
