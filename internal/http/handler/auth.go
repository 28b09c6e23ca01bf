package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/dto"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/service"
)

const stateCookieName = "loomworks_oauth_state"

type AuthHandler struct {
	authService  service.AuthService
	dashboardURL string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, dashboardURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		dashboardURL: dashboardURL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()

	sess, err := h.authService.PasswordLogin(ctx, req.Email, req.Password, &ip, &userAgent)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, service.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "account is deactivated"})
		default:
			slog.ErrorContext(ctx, "password login failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(sess))
}

// SSOLogin redirects the browser to the hosted identity provider.
func (h *AuthHandler) SSOLogin(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	c.SetCookie(
		stateCookieName,
		state,
		600,
		"/",
		"",
		h.isProduction,
		true,
	)

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// SSOCallback exchanges the authorization code for a session. The state
// cookie round trip guards against forged callbacks.
func (h *AuthHandler) SSOCallback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	state := c.Query("state")
	errorParam := c.Query("error")

	if errorParam != "" {
		slog.WarnContext(ctx, "sso provider returned error",
			"error", errorParam,
			"description", c.Query("error_description"))
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error="+errorParam)
		return
	}

	storedState, err := c.Cookie(stateCookieName)
	if err != nil || state != storedState {
		slog.WarnContext(ctx, "oauth state mismatch")
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=invalid_state")
		return
	}
	h.clearStateCookie(c)

	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=no_code")
		return
	}

	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()

	sess, err := h.authService.HandleSSOCallback(ctx, code, &ip, &userAgent)
	if err != nil {
		slog.ErrorContext(ctx, "sso callback failed", "error", err)
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=invalid_code")
		case errors.Is(err, service.ErrUserNotFound):
			c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=unknown_user")
		case errors.Is(err, service.ErrUserInactive):
			c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=account_disabled")
		default:
			c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=callback_failed")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(sess))
}

func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.GetSession(c.Request.Context())
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.ToLoginResponse(sess))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sess := middleware.GetSession(ctx)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	if err := h.authService.Logout(ctx, sess); err != nil {
		slog.WarnContext(ctx, "logout failed", "error", err, "user_id", sess.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// ListSessions returns the caller's own sessions, flagging the current one.
func (h *AuthHandler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sess := middleware.GetSession(ctx)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	sessions, err := h.authService.ListSessions(ctx, sess.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list sessions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s, sess.ID))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": resp})
}

// RevokeSessions deletes every session the caller holds, including the
// one making the request.
func (h *AuthHandler) RevokeSessions(c *gin.Context) {
	ctx := c.Request.Context()

	sess := middleware.GetSession(ctx)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	deleted, err := h.authService.RevokeUserSessions(ctx, sess.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to revoke sessions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"revoked": deleted})
}

func (h *AuthHandler) clearStateCookie(c *gin.Context) {
	c.SetCookie(
		stateCookieName,
		"",
		-1,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
