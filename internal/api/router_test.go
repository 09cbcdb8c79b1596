package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
)

type noopUserService struct{}

func (noopUserService) Reload(context.Context) error { return nil }
func (noopUserService) List(context.Context, ports.ListUsersInput) (*ports.ListUsersResult, error) {
	return &ports.ListUsersResult{}, nil
}
func (noopUserService) Get(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (noopUserService) Stats(context.Context) (domain.Stats, error) { return domain.Stats{}, nil }
func (noopUserService) Create(context.Context, ports.CreateUserInput) (*domain.User, error) {
	return nil, domain.ErrDuplicateName
}
func (noopUserService) Update(context.Context, string, ports.UpdateUserInput) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (noopUserService) ToggleStatus(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (noopUserService) Delete(context.Context, string, string, ports.ConfirmationGate) error {
	return nil
}

// The router is built once: the prometheus middleware registers collectors
// with the default registry and a second registration would panic.
func TestNewRouter_Wiring(t *testing.T) {
	e := NewRouter(RouterConfig{
		UserService: noopUserService{},
		JWTSecret:   "secret",
		Logger:      zerolog.Nop(),
	})

	// Liveness probe is open and passes through the middleware chain.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health: expected 200, got %d", rec.Code)
	}

	// User routes sit behind the JWT middleware.
	req = httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /v1/users without token: expected 401, got %d", rec.Code)
	}

	// Metrics endpoint is mounted.
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics: expected 200, got %d", rec.Code)
	}
}
