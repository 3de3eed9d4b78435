package impl

import (
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
)

// guardOwnership passes only when the principal owns ad. It runs before any
// owner mutation touches the aggregate.
func guardOwnership(principal entity.Principal, ad *entity.Advertisement) error {
	if !principal.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if !ad.IsOwnedBy(principal.UserID) {
		return domainerrors.ErrAdvertisementOwnershipViolation.WithDetailsf("advertisement %s", ad.UUID)
	}

	return nil
}

func requireRole(principal entity.Principal, role entity.Role) error {
	if !principal.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if !principal.HasRole(role) {
		return domainerrors.ErrForbidden.WithDetailsf("role %s required", role)
	}

	return nil
}
