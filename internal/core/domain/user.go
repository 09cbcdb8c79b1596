package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles a managed user record may hold.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderator"
	RoleUser      Role = "User"
)

// Roles lists every recognized role, in display order.
var Roles = []Role{RoleAdmin, RoleModerator, RoleUser}

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateName = errors.New("this name already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrNameTooShort = errors.New("name must be at least 2 characters")
var ErrMissingID = errors.New("user id is required")
var ErrNotConfirmed = errors.New("operation not confirmed")

// ParseRole validates s against the role enumeration. Matching is exact and
// case-sensitive; unrecognized values are rejected at the boundary rather
// than stored as free strings.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if Role(s) == r {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// User is a managed user record. The ID is assigned by the store on
// creation and immutable thereafter; timestamps are store-assigned so
// client clock skew never leaks into the data.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Role      Role      `json:"role" bson:"role"`
	IsActive  bool      `json:"isActive" bson:"isActive"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Stats are the aggregate counts shown above the user table.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
