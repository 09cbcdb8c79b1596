package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminhub/user-management/internal/core/domain"
)

type stubAuthRepo struct {
	accounts map[string]*domain.Account
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{accounts: make(map[string]*domain.Account)}
}

func (r *stubAuthRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, ok := r.accounts[account.Username]; ok {
		return nil, domain.ErrAccountExists
	}
	clone := *account
	clone.ID = "acct-" + account.Username
	r.accounts[account.Username] = &clone
	return &clone, nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	a, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

const testSecret = "test-secret"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	account, err := svc.Register(context.Background(), "ops", "hunter22", "ops@example.com", domain.OperatorAdmin)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.PasswordHash == "hunter22" {
		t.Error("password must be hashed, not stored in the clear")
	}

	token, logged, err := svc.Login(context.Background(), "ops", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Username != "ops" {
		t.Errorf("account = %+v", logged)
	}

	// Token carries the operator claims under HS256.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must validate: %v", err)
	}
	if claims["username"] != "ops" || claims["role"] != domain.OperatorAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	for _, role := range []string{"", "root", "Admin"} {
		_, err := svc.Register(context.Background(), "ops", "hunter22", "", role)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Register(role=%q): want ErrInvalidCredentials, got %v", role, err)
		}
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	if _, err := svc.Register(context.Background(), "ops", "pw123456", "", domain.OperatorViewer); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "ops", "other-pw", "", domain.OperatorViewer)
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("want ErrAccountExists, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)
	_, _ = svc.Register(context.Background(), "ops", "correct-pw", "", domain.OperatorAdmin)

	_, _, err := svc.Login(context.Background(), "ops", "wrong-pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost", "pw")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}
