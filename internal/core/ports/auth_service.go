package ports

import (
	"context"

	"github.com/adminhub/user-management/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}
