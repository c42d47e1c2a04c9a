package role

import "github.com/google/uuid"

// Actor is the authenticated identity every gated operation receives. It is
// built by the HTTP layer from verified token claims.
type Actor struct {
	ID   uuid.UUID
	Role Name
}

func (a Actor) IsStaff() bool {
	return a.Role == Staff
}
