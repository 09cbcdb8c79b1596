package handler

import (
	"github.com/adminhub/user-management/internal/core/domain"
	"github.com/adminhub/user-management/internal/core/ports"
	"github.com/adminhub/user-management/internal/pkg/dates"
)

// --- Request → Service input ---

func toCreateInput(req createUserRequest, actor string) ports.CreateUserInput {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return ports.CreateUserInput{
		Name:     req.Name,
		Role:     req.Role,
		IsActive: isActive,
		Actor:    actor,
	}
}

func toUpdateInput(req updateUserRequest, actor string) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:     req.Name,
		Role:     req.Role,
		IsActive: req.IsActive,
		Actor:    actor,
	}
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListUsersResult, dateFormat string) listUsersResponse {
	items := make([]userRowResponse, len(r.Items))
	for i, u := range r.Items {
		items[i] = userRowResponse{
			ID:        u.ID,
			Name:      u.Name,
			Role:      string(u.Role),
			IsActive:  u.IsActive,
			CreatedAt: dates.Format(u.CreatedAt, dateFormat),
			UpdatedAt: dates.Format(u.UpdatedAt, dateFormat),
		}
	}
	return listUsersResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
