package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type CreateUserRequest struct {
	TenantID *int64  `json:"tenant_id,string,omitempty"`
	Email    string  `json:"email" binding:"required,email,max=255"`
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8,max=255"`
	Role     string  `json:"role" binding:"required,oneof=admin manager consultant client"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email,max=255"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin manager consultant client"`
}

type UserResponse struct {
	ID           int64     `json:"id,string"`
	TenantID     *int64    `json:"tenant_id,string,omitempty"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PlatformRole *string   `json:"platform_role,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToUserResponse(user *model.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		TenantID:  user.TenantID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.PlatformRole != nil {
		role := string(*user.PlatformRole)
		resp.PlatformRole = &role
	}
	return resp
}
