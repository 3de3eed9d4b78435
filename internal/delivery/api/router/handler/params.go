package handler

import (
	"strconv"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func principalOf(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetailsf("%s: must be a UUID", name)
	}

	return id, nil
}

func idParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetailsf("%s: must be a positive integer", name)
	}

	return id, nil
}
