package auth

import (
	"github.com/rkp0912/Trello-quora/internal/domain"
)

// Authorization policy for protected operations. Pure decision functions:
// the caller supplies a resolved, active session and the owner id of the
// target resource.
//
// Edits are owner-only and an admin does NOT bypass that check; deletes
// allow owner or admin. The asymmetry is deliberate and per operation.

// RequireAdmin denies unless the session's user holds the admin role.
func RequireAdmin(session *domain.UserSession) error {
	if !session.User.IsAdmin() {
		return domain.ErrForbidden.WithMessage("Unauthorized Access, Entered user is not an admin")
	}
	return nil
}

// RequireOwner denies unless the session's user owns the resource.
func RequireOwner(session *domain.UserSession, ownerID domain.UserID) error {
	if session.User.ID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin denies unless the session's user owns the resource
// or holds the admin role.
func RequireOwnerOrAdmin(session *domain.UserSession, ownerID domain.UserID) error {
	if session.User.ID == ownerID || session.User.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}
