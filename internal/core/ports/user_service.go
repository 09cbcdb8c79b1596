package ports

import (
	"context"

	"github.com/adminhub/user-management/internal/core/domain"
)

// CreateUserInput carries the creation payload: no ID, no timestamps.
type CreateUserInput struct {
	Name     string
	Role     string
	IsActive bool
	Actor    string
}

// UpdateUserInput is the partial edit payload. Nil fields are not patched.
type UpdateUserInput struct {
	Name     *string
	Role     *string
	IsActive *bool
	Actor    string
}

// ListUsersInput carries the table-view query parameters. Filter is a
// display-only, case-insensitive substring match applied client-side to
// the loaded collection; it does not reset Page.
type ListUsersInput struct {
	Filter string
	Page   int // 1-based
	Limit  int // capped at 100 by the service
}

// ListUsersResult is a page of the (optionally filtered) collection.
type ListUsersResult struct {
	Items      []domain.User
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines the use-case operations over the user collection.
// Every successful mutation is followed by a full reload of the collection
// from the store; the in-memory snapshot is never patched incrementally
// except through the explicit optimistic-toggle option.
type UserService interface {
	Reload(ctx context.Context) error
	List(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	ToggleStatus(ctx context.Context, id string, actor string) (*domain.User, error)
	// Delete consults gate before touching the store; a declined prompt
	// yields domain.ErrNotConfirmed and the store is never called.
	Delete(ctx context.Context, id string, actor string, gate ConfirmationGate) error
}
