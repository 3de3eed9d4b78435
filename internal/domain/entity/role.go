package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role is a grant carried in the access token.
type Role string

const (
	// RoleUser may publish and manage its own advertisements.
	RoleUser Role = "user"
	// RoleAdmin may act on any advertisement and on reference data.
	RoleAdmin Role = "admin"
)

var knownRoles = []Role{RoleUser, RoleAdmin}

type Roles []Role

// RolesFromStrings keeps the known roles of a token claim and drops the rest.
func RolesFromStrings(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); slices.Contains(knownRoles, r) {
			roles = append(roles, r)
		}
	}

	return roles
}

// Principal is the authenticated caller, resolved once at the transport
// boundary and passed explicitly into every mutating operation.
type Principal struct {
	UserID uuid.UUID
	Roles  Roles
}

func NewPrincipal(userID uuid.UUID, roles []string) Principal {
	return Principal{UserID: userID, Roles: RolesFromStrings(roles)}
}

// IsAuthenticated is false for the zero principal.
func (p Principal) IsAuthenticated() bool {
	return p.UserID != uuid.Nil
}

func (p Principal) HasRole(role Role) bool {
	return slices.Contains(p.Roles, role)
}
