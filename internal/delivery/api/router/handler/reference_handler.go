package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReferenceHandlerParams holds dependencies for ReferenceHandler, injected by Fx.
type ReferenceHandlerParams struct {
	fx.In

	RefUC  usecase.ReferenceUsecase
	Logger *slog.Logger
}

// ReferenceHandler serves vehicle types, fuel types, makes and models.
type ReferenceHandler struct {
	refUC  usecase.ReferenceUsecase
	logger *slog.Logger
}

// NewReferenceHandler is the constructor for ReferenceHandler
func NewReferenceHandler(params ReferenceHandlerParams) *ReferenceHandler {
	return &ReferenceHandler{
		refUC:  params.RefUC,
		logger: params.Logger,
	}
}

// LookupResponse is a named lookup entry
type LookupResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// MakeResponse is a make with the vehicle types it is offered for
type MakeResponse struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	VehicleTypeIDs []uint64 `json:"vehicleTypeIds"`
}

// ModelResponse is a model of a make
type ModelResponse struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	MakeID        uint64 `json:"makeId"`
	VehicleTypeID uint64 `json:"vehicleTypeId"`
}

// RenameMakeRequest represents the request body for renaming a make
type RenameMakeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ListVehicleTypes handles listing the vehicle types
func (h *ReferenceHandler) ListVehicleTypes(c echo.Context) error {
	types, err := h.refUC.ListVehicleTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]LookupResponse, 0, len(types))
	for _, t := range types {
		out = append(out, LookupResponse{ID: t.ID, Name: t.Name})
	}

	return response.Success(c, http.StatusOK, out)
}

// ListFuelTypes handles listing the fuel types
func (h *ReferenceHandler) ListFuelTypes(c echo.Context) error {
	types, err := h.refUC.ListFuelTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]LookupResponse, 0, len(types))
	for _, t := range types {
		out = append(out, LookupResponse{ID: t.ID, Name: t.Name})
	}

	return response.Success(c, http.StatusOK, out)
}

// ListMakes handles listing makes, optionally narrowed by ?vehicleTypeId=
func (h *ReferenceHandler) ListMakes(c echo.Context) error {
	var vehicleTypeID uint64
	if err := echo.QueryParamsBinder(c).Uint64("vehicleTypeId", &vehicleTypeID).BindError(); err != nil {
		return response.HandleAppError(c, bindingError(err))
	}

	var filter *uint64
	if c.QueryParams().Has("vehicleTypeId") {
		filter = &vehicleTypeID
	}

	makes, err := h.refUC.ListMakes(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]MakeResponse, 0, len(makes))
	for _, m := range makes {
		out = append(out, toMakeResponse(m))
	}

	return response.Success(c, http.StatusOK, out)
}

// ListModels handles listing the models of a make
func (h *ReferenceHandler) ListModels(c echo.Context) error {
	makeID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	models, err := h.refUC.ListModels(c.Request().Context(), makeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ModelResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ModelResponse{
			ID:            m.ID,
			Name:          m.Name,
			MakeID:        m.MakeID,
			VehicleTypeID: m.VehicleTypeID,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// RenameMake handles renaming a make
func (h *ReferenceHandler) RenameMake(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RenameMakeRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("body: must be a JSON object"))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.refUC.RenameMake(c.Request().Context(), principal, id, req.Name); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteMake handles deleting a make no model references
func (h *ReferenceHandler) DeleteMake(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.refUC.DeleteMake(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toMakeResponse(m *entity.Make) MakeResponse {
	vehicleTypeIDs := m.VehicleTypeIDs
	if vehicleTypeIDs == nil {
		vehicleTypeIDs = []uint64{}
	}

	return MakeResponse{ID: m.ID, Name: m.Name, VehicleTypeIDs: vehicleTypeIDs}
}
