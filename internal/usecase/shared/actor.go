package shared

import (
	"proposal-service/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as seen by the usecase layer.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// CanAccess reports whether the actor may touch a record owned by
// ownerID. Admins see everything; sales reps only their own records.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.Role == user.RoleAdmin || a.ID == ownerID
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
