package ports

import (
	"context"

	"github.com/adminhub/user-management/internal/core/domain"
)

// UserPatch is a partial update. Nil fields are left untouched; the store
// refreshes updatedAt on every applied patch.
type UserPatch struct {
	Name     *string
	Role     *domain.Role
	IsActive *bool
}

// UserRepository defines persistence operations for managed user records.
// The store assigns IDs and both timestamps; callers never supply them.
type UserRepository interface {
	// List returns every record in the collection.
	List(ctx context.Context) ([]domain.User, error)
	// FindByID retrieves a single record. Unknown or malformed IDs yield
	// domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts a new record and returns it with the assigned ID and
	// timestamps populated.
	Create(ctx context.Context, name string, role domain.Role, isActive bool) (*domain.User, error)
	// Update applies a partial patch to an existing record.
	Update(ctx context.Context, id string, patch UserPatch) error
	// Delete removes a record. Unknown IDs yield domain.ErrUserNotFound.
	Delete(ctx context.Context, id string) error
}
