// Package policy holds the authorization checks applied by every resource
// service before a mutation. Callers resolve the target first: a missing
// resource is reported as 404 before any of these run.
package policy

import (
	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/errors"
)

// CanModify allows mutation of an authored resource (article, comment) to
// its owner or to staff. A resource whose author was deleted has a nil
// owner and can only be touched by staff.
func CanModify(actor domain.User, ownerId *domain.UserId) error {
	if actor.Staff {
		return nil
	}
	if ownerId != nil && *ownerId == actor.Id {
		return nil
	}
	return errors.Forbidden("You don't have permission")
}

// CanModifyUser allows mutation of a user record to the user themselves or
// to staff. Self-identity counts as ownership for the Users resource.
func CanModifyUser(actor domain.User, targetId domain.UserId) error {
	if actor.Staff || actor.Id == targetId {
		return nil
	}
	return errors.Forbidden("You don't have permission")
}

// RequireActive gates create operations: an unconfirmed account cannot
// author content.
func RequireActive(actor domain.User) error {
	if !actor.Active {
		return errors.Forbidden("You need to confirm email")
	}
	return nil
}

// CanChangeStaff guards the staff flag inside a user-update payload. The
// check is independent of CanModifyUser: a self-update may still not touch
// the flag.
func CanChangeStaff(actor domain.User) error {
	if !actor.Staff {
		return errors.Forbidden("Only admin can change staff status")
	}
	return nil
}
