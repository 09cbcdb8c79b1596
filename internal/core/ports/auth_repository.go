package ports

import (
	"context"

	"github.com/adminhub/user-management/internal/core/domain"
)

// AuthRepository defines the interface for operator account persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
