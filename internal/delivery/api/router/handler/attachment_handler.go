package handler

import (
	"net/http"

	"market/internal/delivery/api/response"
	"market/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const attachmentCacheControl = "public, max-age=86400"

// AttachmentHandler serves stored attachment files.
type AttachmentHandler struct {
	storage service.AttachmentStorage
}

// NewAttachmentHandler is the constructor for AttachmentHandler
func NewAttachmentHandler(storage service.AttachmentStorage) *AttachmentHandler {
	return &AttachmentHandler{storage: storage}
}

// ServeAttachment streams /uploads/:filename from the attachment store.
func (h *AttachmentHandler) ServeAttachment(c echo.Context) error {
	r, contentType, err := h.storage.Open(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer r.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", attachmentCacheControl)
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, contentType, r)
}
