package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	statsFn  func(ctx context.Context) (domain.Stats, error)
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	toggleFn func(ctx context.Context, id, actor string) (*domain.User, error)
	deleteFn func(ctx context.Context, id, actor string, gate ports.ConfirmationGate) error
}

func (s *stubUserService) Reload(context.Context) error { return nil }

func (s *stubUserService) List(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Stats(ctx context.Context) (domain.Stats, error) {
	return s.statsFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) ToggleStatus(ctx context.Context, id, actor string) (*domain.User, error) {
	return s.toggleFn(ctx, id, actor)
}

func (s *stubUserService) Delete(ctx context.Context, id, actor string, gate ports.ConfirmationGate) error {
	return s.deleteFn(ctx, id, actor, gate)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

var fixedTime = time.Date(2024, 3, 5, 14, 30, 45, 0, time.UTC)

func sampleUser(id, name string) *domain.User {
	return &domain.User{
		ID:        id,
		Name:      name,
		Role:      domain.RoleUser,
		IsActive:  true,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestUserHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Role != "Admin" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if !input.IsActive {
				t.Fatal("isActive must default to true when omitted")
			}
			if input.Actor != "ops" {
				t.Fatalf("actor = %q", input.Actor)
			}
			u := sampleUser("1", input.Name)
			u.Role = domain.RoleAdmin
			return u, nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"Alice","role":"Admin"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "ops")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Alice" || resp["role"] != "Admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Create_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_ValidationMessages(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	cases := []struct {
		body string
		want string
	}{
		{`{"role":"User"}`, "Name is required"},
		{`{"name":"A","role":"User"}`, "Name must be at least 2 characters"},
		{`{"name":"Alice","role":"nobody"}`, "Role must be one of: Admin Moderator User"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(tc.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Create(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %v", tc.body, err)
		}
		if msg, _ := he.Message.(string); !strings.Contains(msg, tc.want) {
			t.Errorf("body %s: message %q must contain %q", tc.body, msg, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestUserHandler_List_PassesQueryParams(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		listFn: func(_ context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
			if input.Filter != "ali" || input.Page != 2 || input.Limit != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListUsersResult{
				Items: []domain.User{*sampleUser("1", "Alice")},
				Total: 1, Page: 2, Limit: 5, TotalPages: 1,
			}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/users?filter=ali&page=2&limit=5&date_format=date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []struct {
			Name      string `json:"name"`
			CreatedAt string `json:"createdAt"`
		} `json:"data"`
		Pagination struct {
			Total int `json:"total"`
			Page  int `json:"page"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "Alice" {
		t.Fatalf("data = %+v", resp.Data)
	}
	if resp.Data[0].CreatedAt != "3/5/2024" {
		t.Errorf("date_format=date must render %q, got %q", "3/5/2024", resp.Data[0].CreatedAt)
	}
	if resp.Pagination.Total != 1 || resp.Pagination.Page != 2 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
}

// ---------------------------------------------------------------------------
// Stats / Get
// ---------------------------------------------------------------------------

func TestUserHandler_Stats(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		statsFn: func(context.Context) (domain.Stats, error) {
			return domain.Stats{Total: 3, Active: 2, Inactive: 1}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != 3 || resp["active"] != 2 || resp["inactive"] != 1 {
		t.Fatalf("stats = %+v", resp)
	}
}

func TestUserHandler_Get(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getFn: func(_ context.Context, id string) (*domain.User, error) {
			if id != "abc" {
				t.Fatalf("id = %q", id)
			}
			return sampleUser(id, "Alice"), nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Delete and the confirmation gate
// ---------------------------------------------------------------------------

func TestUserHandler_Delete_WithoutConfirmReturnsPrompt(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id, actor string, gate ports.ConfirmationGate) error {
			confirmed, err := gate.Confirm(ctx, ports.Prompt{
				Title:       "Delete User",
				Description: "Are you sure you want to delete Alice? This action cannot be undone.",
			})
			if err != nil {
				return err
			}
			if !confirmed {
				return domain.ErrNotConfirmed
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp struct {
		Error  string       `json:"error"`
		Prompt ports.Prompt `json:"prompt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "confirmation required" {
		t.Errorf("error = %q", resp.Error)
	}
	if resp.Prompt.Title != "Delete User" {
		t.Errorf("title = %q", resp.Prompt.Title)
	}
	// Button labels get their defaults when the prompt passes the gate.
	if resp.Prompt.ConfirmText != "Confirm" || resp.Prompt.CancelText != "Cancel" {
		t.Errorf("buttons = %q / %q", resp.Prompt.ConfirmText, resp.Prompt.CancelText)
	}
}

func TestUserHandler_Delete_Confirmed(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id, actor string, gate ports.ConfirmationGate) error {
			confirmed, _ := gate.Confirm(ctx, ports.Prompt{Title: "Delete User"})
			if !confirmed {
				t.Fatal("confirm=true must resolve the gate to true")
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/abc?confirm=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// ToggleStatus
// ---------------------------------------------------------------------------

func TestUserHandler_ToggleStatus(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		toggleFn: func(_ context.Context, id, actor string) (*domain.User, error) {
			if id != "abc" || actor != "ops" {
				t.Fatalf("id=%q actor=%q", id, actor)
			}
			u := sampleUser(id, "Alice")
			u.IsActive = false
			return u, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/v1/users/abc/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	c.Set("username", "ops")

	if err := h.ToggleStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isActive"] != false {
		t.Errorf("isActive = %v", resp["isActive"])
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUserHandler_Update_PartialPatch(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		updateFn: func(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			if input.Name != nil {
				t.Fatal("omitted name must stay nil")
			}
			if input.Role == nil || *input.Role != "Moderator" {
				t.Fatalf("role = %v", input.Role)
			}
			u := sampleUser(id, "Alice")
			u.Role = domain.RoleModerator
			return u, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/v1/users/abc", strings.NewReader(`{"role":"Moderator"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
