package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/usecase"

	"go.uber.org/fx"
)

const maxReferenceNameLength = 100

// referenceService implements the ReferenceUsecase interface.
type referenceService struct {
	txManager repository.TransactionManager
	refRepo   repository.ReferenceRepository
	logger    *slog.Logger
}

// ReferenceServiceParams holds dependencies for ReferenceService, injected by Fx.
type ReferenceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RefRepo   repository.ReferenceRepository
	Logger    *slog.Logger
}

// NewReferenceService is the constructor for referenceService.
func NewReferenceService(params ReferenceServiceParams) usecase.ReferenceUsecase {
	return &referenceService{
		txManager: params.TxManager,
		refRepo:   params.RefRepo,
		logger:    params.Logger,
	}
}

func (srv *referenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *referenceService) ListVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error) {
	types, err := srv.refRepo.ListVehicleTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle types")
	}

	return types, nil
}

func (srv *referenceService) ListFuelTypes(ctx context.Context) ([]*entity.FuelType, error) {
	types, err := srv.refRepo.ListFuelTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fuel types")
	}

	return types, nil
}

func (srv *referenceService) ListMakes(ctx context.Context, vehicleTypeID *uint64) ([]*entity.Make, error) {
	makes, err := srv.refRepo.ListMakes(ctx, vehicleTypeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list makes")
	}

	return makes, nil
}

// ListModels lists a make's models. An unknown make is NotFound rather than an empty list.
func (srv *referenceService) ListModels(ctx context.Context, makeID uint64) ([]*entity.Model, error) {
	if _, err := srv.refRepo.FindMakeByID(ctx, makeID); err != nil {
		return nil, err
	}

	models, err := srv.refRepo.ListModelsByMake(ctx, makeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list models")
	}

	return models, nil
}

// RenameMake changes the catalog name only. Advertisements keep the name they
// were created with.
func (srv *referenceService) RenameMake(ctx context.Context, principal entity.Principal, id uint64, name string) error {
	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxReferenceNameLength {
		return domainerrors.ErrValidationFailed.WithDetailsf("name: must be 1 to %d characters", maxReferenceNameLength)
	}

	if err := srv.refRepo.RenameMake(ctx, id, name); err != nil {
		return errors.Wrap(err, "failed to rename make")
	}

	srv.log(ctx).Info("Make renamed", slog.Uint64("makeID", id), slog.String("name", name), slog.String("adminID", principal.UserID.String()))

	return nil
}

// DeleteMake removes a make that no model references.
func (srv *referenceService) DeleteMake(ctx context.Context, principal entity.Principal, id uint64) error {
	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refRepo := repoFactory.NewReferenceRepository()

		if _, err := refRepo.FindMakeByID(ctx, id); err != nil {
			return err
		}

		models, err := refRepo.CountModelsByMake(ctx, id)
		if err != nil {
			return err
		}
		if models > 0 {
			return domainerrors.ErrReferenceInUse.WithDetailsf("make %d has %d models", id, models)
		}

		return refRepo.DeleteMake(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete make")
	}

	srv.log(ctx).Info("Make deleted", slog.Uint64("makeID", id), slog.String("adminID", principal.UserID.String()))

	return nil
}
