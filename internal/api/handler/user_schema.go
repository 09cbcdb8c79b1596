package handler

import (
	"time"

	"github.com/adminhub/user-management/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	Role string `json:"role" validate:"required,oneof=Admin Moderator User"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"isActive"`
}

type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2"`
	Role     *string `json:"role"     validate:"omitempty,oneof=Admin Moderator User"`
	IsActive *bool   `json:"isActive"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal
// changes.

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// userRowResponse is the table-view item used in list responses. The
// timestamps are display strings rendered under the requested date_format
// mode, the way the admin table shows them.
type userRowResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

type listUsersResponse struct {
	Data       []userRowResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type statsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// confirmationRequiredResponse is returned when a destructive operation
// was attempted without confirmation; the prompt carries everything the
// client needs to render the dialog.
type confirmationRequiredResponse struct {
	Error  string       `json:"error"`
	Prompt ports.Prompt `json:"prompt"`
}
