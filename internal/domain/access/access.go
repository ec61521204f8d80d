// Package access is the single capability check shared by every booking
// and payment operation.
package access

import (
	"slices"

	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrForbidden = errs.Reject(errs.KindUnauthorized, "unauthorized")

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool { return a.Role == user.RoleAdmin }

// Authorize passes administrators unconditionally. Otherwise the actor must
// hold one of roles (when any are given) and be one of owners (when any are
// given).
func Authorize(actor Actor, owners []uuid.UUID, roles ...user.Role) error {
	if actor.IsAdmin() {
		return nil
	}
	if len(roles) > 0 && !slices.Contains(roles, actor.Role) {
		return ErrForbidden
	}
	if len(owners) > 0 && !slices.Contains(owners, actor.ID) {
		return ErrForbidden
	}
	return nil
}
