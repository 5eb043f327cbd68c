package usecase

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// IsAuthenticated reports whether the actor carries a resolved user id.
func (a *Actor) IsAuthenticated() bool {
	return a != nil && a.UserID != uuid.Nil
}

// IsAdmin reports whether the actor has administrative rights.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role.IsAdmin()
}

// CanAccess reports whether the actor owns a resource of ownerID or is an admin.
func (a *Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin() || (a.IsAuthenticated() && a.UserID == ownerID)
}
