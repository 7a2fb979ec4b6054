package services

import (
	"github.com/geargrid/geargrid-api/models"
)

// Identity is the caller identity injected into every service call. Role
// gating is a predicate over this value rather than ambient middleware state,
// so the services stay testable without an HTTP stack.
type Identity struct {
	UserID uint
	Role   string
}

// IsMechanic reports whether the caller holds the mechanic role
func (id Identity) IsMechanic() bool {
	return id.Role == models.RoleMechanic
}

// IdentityOf builds the caller identity for a user record
func IdentityOf(user *models.User) Identity {
	return Identity{UserID: user.ID, Role: user.Role}
}
