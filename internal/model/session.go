package model

import "time"

// Session is a server-side session keyed by an opaque token. Identity
// fields are denormalized at login so authenticating a request costs a
// single lookup.
type Session struct {
	ID              string        `json:"id"`
	UserID          int64         `json:"user_id"`
	Email           string        `json:"email"`
	Name            string        `json:"name"`
	Role            Role          `json:"role"`
	PlatformRole    *PlatformRole `json:"platform_role,omitempty"`
	ActiveTenantID  *int64        `json:"active_tenant_id,omitempty"`
	SSOProvider     *string       `json:"sso_provider,omitempty"`
	SSOToken        *string       `json:"-"`
	SSORefreshToken *string       `json:"-"`
	SSOTokenExpiry  *time.Time    `json:"-"`
	IPAddress       *string       `json:"ip_address,omitempty"`
	UserAgent       *string       `json:"user_agent,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	LastActivity    time.Time     `json:"last_activity"`
	ExpiresAt       time.Time     `json:"expires_at"`
}

// IsSSO reports whether this session was established through an
// external identity provider.
func (s *Session) IsSSO() bool {
	return s.SSOProvider != nil && *s.SSOProvider != ""
}

// Identity is the per-request view of the authenticated caller that
// middleware attaches to the request context.
type Identity struct {
	SessionID      string
	UserID         int64
	Email          string
	Name           string
	Role           Role
	PlatformRole   *PlatformRole
	ActiveTenantID *int64
}

// Identity projects the session's denormalized identity fields.
func (s *Session) Identity() Identity {
	return Identity{
		SessionID:      s.ID,
		UserID:         s.UserID,
		Email:          s.Email,
		Name:           s.Name,
		Role:           s.Role,
		PlatformRole:   s.PlatformRole,
		ActiveTenantID: s.ActiveTenantID,
	}
}
