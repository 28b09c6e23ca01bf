package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}

// LoginResponse is the session-establishing payload shared by password
// login and the SSO callback.
type LoginResponse struct {
	ID           int64   `json:"id,string"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	PlatformRole *string `json:"platformRole,omitempty"`
	TenantID     *int64  `json:"tenantId,string,omitempty"`
	SessionID    string  `json:"sessionId"`
}

func ToLoginResponse(sess *model.Session) *LoginResponse {
	resp := &LoginResponse{
		ID:        sess.UserID,
		Email:     sess.Email,
		Name:      sess.Name,
		Role:      string(sess.Role),
		TenantID:  sess.ActiveTenantID,
		SessionID: sess.ID,
	}
	if sess.PlatformRole != nil {
		role := string(*sess.PlatformRole)
		resp.PlatformRole = &role
	}
	return resp
}

type SessionResponse struct {
	ID           string    `json:"id"`
	SSOProvider  *string   `json:"sso_provider,omitempty"`
	IPAddress    *string   `json:"ip_address,omitempty"`
	UserAgent    *string   `json:"user_agent,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	ExpiresAt    time.Time `json:"expires_at"`
	Current      bool      `json:"current"`
}

func ToSessionResponse(sess model.Session, currentID string) SessionResponse {
	return SessionResponse{
		ID:           sess.ID,
		SSOProvider:  sess.SSOProvider,
		IPAddress:    sess.IPAddress,
		UserAgent:    sess.UserAgent,
		CreatedAt:    sess.CreatedAt,
		LastActivity: sess.LastActivity,
		ExpiresAt:    sess.ExpiresAt,
		Current:      sess.ID == currentID,
	}
}
