package access

import "atelier-app/internal/domain/users"

// CanDeletePiece says whether the caller may delete a piece: the admin role
// deletes anything, a practician only their own submissions.
func CanDeletePiece(role string, callerEmail string, ownerEmail string) bool {
	if role == users.RoleAdmin {
		return true
	}
	return callerEmail != "" && callerEmail == ownerEmail
}
