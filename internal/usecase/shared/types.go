package shared

import (
	"motorcare/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller driving a command or query.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

func (a Actor) IsMechanic() bool {
	return a.Role == user.RoleMechanic
}
