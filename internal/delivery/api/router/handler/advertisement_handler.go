package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"market/internal/delivery/api/response"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteGetAdvertisement names the public read route; created advertisements point at it.
const RouteGetAdvertisement = "advertisements.get"

const (
	payloadField      = "advertisement"
	filesField        = "files"
	replaceFlagField  = "replaceAttachments"
	qrCodeContentType = "image/png"
)

// AdvertisementHandlerParams holds dependencies for AdvertisementHandler, injected by Fx.
type AdvertisementHandlerParams struct {
	fx.In

	AdUC   usecase.AdvertisementUsecase
	Logger *slog.Logger
}

// AdvertisementHandler serves the advertisement lifecycle, search and admin endpoints.
type AdvertisementHandler struct {
	adUC   usecase.AdvertisementUsecase
	logger *slog.Logger
}

// NewAdvertisementHandler is the constructor for AdvertisementHandler
func NewAdvertisementHandler(params AdvertisementHandlerParams) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUC:   params.AdUC,
		logger: params.Logger,
	}
}

// CreateAdvertisement handles a multipart form with the JSON payload and the files.
func (h *AdvertisementHandler) CreateAdvertisement(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := multipartForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateAdvertisementInput
	found, err := decodePayload(form, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !found {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetailsf("%s: is required", payloadField))
	}

	view, err := h.adUC.CreateAdvertisement(c.Request().Context(), principal, &input, uploadsOf(form))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, c.Echo().Reverse(RouteGetAdvertisement, view.UUID), view)
}

// UpdateAdvertisement handles a partial update. The payload part may be omitted
// when only files change.
func (h *AdvertisementHandler) UpdateAdvertisement(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	adUUID, err := uuidParam(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := multipartForm(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateAdvertisementInput
	if _, err := decodePayload(form, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	replace, err := replaceFlag(form)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.adUC.UpdateAdvertisement(c.Request().Context(), principal, adUUID, &input, uploadsOf(form), replace)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DeleteAdvertisement removes the caller's advertisement.
func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	adUUID, err := uuidParam(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adUC.DeleteAdvertisement(c.Request().Context(), principal, adUUID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAdvertisement handles retrieving a single advertisement by its public id
func (h *AdvertisementHandler) GetAdvertisement(c echo.Context) error {
	adUUID, err := uuidParam(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.adUC.GetAdvertisementByUUID(c.Request().Context(), adUUID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SearchAdvertisements handles the public search by label filters.
func (h *AdvertisementHandler) SearchAdvertisements(c echo.Context) error {
	input := &usecase.SearchAdvertisementsInput{}
	binder := echo.QueryParamsBinder(c).
		String("vehicleType", &input.VehicleType).
		String("make", &input.Make).
		String("model", &input.Model).
		String("locationName", &input.LocationName).
		String("postalCode", &input.PostalCode)

	return h.search(c, binder, input)
}

// GetMyAdvertisements lists the caller's own advertisements.
func (h *AdvertisementHandler) GetMyAdvertisements(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views, err := h.adUC.GetAdvertisementsByOwner(c.Request().Context(), principal.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// GetShareQRCode renders the share code of an advertisement as PNG.
func (h *AdvertisementHandler) GetShareQRCode(c echo.Context) error {
	adUUID, err := uuidParam(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.adUC.GenerateShareQRCode(c.Request().Context(), adUUID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, qrCodeContentType, png)
}

// AdminSearchAdvertisements handles the admin search by reference ids.
func (h *AdvertisementHandler) AdminSearchAdvertisements(c echo.Context) error {
	input := &usecase.SearchAdvertisementsInput{}
	var vehicleTypeID, makeID, modelID uint64
	binder := echo.QueryParamsBinder(c).
		Uint64("vehicleTypeId", &vehicleTypeID).
		Uint64("makeId", &makeID).
		Uint64("modelId", &modelID)

	query := c.QueryParams()
	if query.Has("vehicleTypeId") {
		input.VehicleTypeID = &vehicleTypeID
	}
	if query.Has("makeId") {
		input.MakeID = &makeID
	}
	if query.Has("modelId") {
		input.ModelID = &modelID
	}

	return h.search(c, binder, input)
}

// AdminGetAdvertisement handles retrieving an advertisement by its surrogate id
func (h *AdvertisementHandler) AdminGetAdvertisement(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.adUC.GetAdvertisementByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AdminDeleteAdvertisement removes any advertisement.
func (h *AdvertisementHandler) AdminDeleteAdvertisement(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	adUUID, err := uuidParam(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adUC.AdminDeleteAdvertisement(c.Request().Context(), principal, adUUID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// search binds the paging parameters shared by every search endpoint and runs the query.
func (h *AdvertisementHandler) search(c echo.Context, binder *echo.ValueBinder, input *usecase.SearchAdvertisementsInput) error {
	var page, size int
	err := binder.
		Int("page", &page).
		Int("size", &size).
		String("sortBy", &input.SortBy).
		String("direction", &input.Direction).
		BindError()
	if err != nil {
		return response.HandleAppError(c, bindingError(err))
	}

	query := c.QueryParams()
	if query.Has("page") {
		input.Page = &page
	}
	if query.Has("size") {
		input.Size = &size
	}

	result, err := h.adUC.SearchAdvertisements(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func multipartForm(c echo.Context) (*multipart.Form, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("request must be multipart/form-data")
		}
		// body limit violations keep their own status
		if _, ok := errors.AsType[*echo.HTTPError](err); ok {
			return nil, err
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return form, nil
}

// decodePayload reads the JSON part of the form. Unknown fields are rejected, so
// a client cannot smuggle an owner or an id into the aggregate.
func decodePayload(form *multipart.Form, dst any) (bool, error) {
	values := form.Value[payloadField]
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return false, nil
	}

	decoder := json.NewDecoder(strings.NewReader(values[0]))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return true, domainerrors.ErrValidationFailed.WithDetailsf("%s: %s", payloadField, err.Error())
	}

	return true, nil
}

func replaceFlag(form *multipart.Form) (bool, error) {
	values := form.Value[replaceFlagField]
	if len(values) == 0 || values[0] == "" {
		return false, nil
	}

	replace, err := strconv.ParseBool(values[0])
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithDetailsf("%s: must be a boolean", replaceFlagField)
	}

	return replace, nil
}

func uploadsOf(form *multipart.Form) []*service.Upload {
	headers := form.File[filesField]
	uploads := make([]*service.Upload, 0, len(headers))
	for _, header := range headers {
		uploads = append(uploads, &service.Upload{
			OriginalName: header.Filename,
			ContentType:  header.Header.Get(echo.HeaderContentType),
			Size:         header.Size,
			Open: func() (io.ReadCloser, error) {
				return header.Open()
			},
		})
	}

	return uploads
}

func bindingError(err error) error {
	if bindErr, ok := errors.AsType[*echo.BindingError](err); ok {
		return domainerrors.ErrValidationFailed.WithDetailsf("%s: is not a valid number", bindErr.Field)
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}
