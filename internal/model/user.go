package model

import "time"

// Role is the user's role inside their tenant.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleConsultant Role = "consultant"
	RoleClient     Role = "client"
)

// PlatformRole grants cross-tenant powers. Most users have none.
type PlatformRole string

const (
	PlatformRoleOperator PlatformRole = "operator"
	PlatformRoleSupport  PlatformRole = "support"
)

type User struct {
	ID           int64         `json:"id"`
	TenantID     *int64        `json:"tenant_id,omitempty"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	PasswordHash *string       `json:"-"`
	Role         Role          `json:"role"`
	PlatformRole *PlatformRole `json:"platform_role,omitempty"`
	WorkOSID     *string       `json:"-"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
