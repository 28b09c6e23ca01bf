package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/common/logger"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

type contextKey string

const (
	sessionIDHeader               = "X-Session-Id"
	identityContextKey contextKey = "identity"
	sessionContextKey  contextKey = "session"
)

// AuthMiddleware authenticates requests against the session layer.
type AuthMiddleware struct {
	cache    *session.Cache
	sessions store.SessionStore
	auth     service.AuthService
}

func NewAuthMiddleware(cache *session.Cache, sessions store.SessionStore, auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{cache: cache, sessions: sessions, auth: auth}
}

// RequireAuth resolves the X-Session-Id header to a session, slides its
// expiry, and attaches the caller's identity to the request context.
// Every failure mode resolves to 401: a store error must never let a
// request through with a session the store would not vouch for.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := c.GetHeader(sessionIDHeader)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		sess, err := m.cache.Get(ctx, token)
		if err != nil {
			if err != store.ErrNotFound {
				slog.ErrorContext(ctx, "session lookup failed", "error", err)
			}
			abortUnauthenticated(c)
			return
		}

		if sess.IsSSO() && m.sessions.NeedsSSORefresh(sess) {
			// Best effort: a refresh failure is the identity provider's
			// problem, not this request's.
			if refreshErr := m.auth.RefreshSSOTokens(ctx, sess); refreshErr != nil {
				slog.WarnContext(ctx, "sso token refresh failed",
					"error", refreshErr,
					"user_id", sess.UserID)
			}
		}

		if err := m.cache.Touch(ctx, sess); err != nil {
			slog.WarnContext(ctx, "session touch failed", "error", err, "user_id", sess.UserID)
		}

		identity := sess.Identity()

		tokenPrefix := logger.Truncate(sess.ID, 8)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			TenantID:  identity.ActiveTenantID,
			UserID:    &identity.UserID,
			SessionID: &tokenPrefix,
		})
		ctx = WithIdentity(ctx, identity)
		ctx = WithSession(ctx, sess)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole aborts with 403 unless the caller holds one of the given
// tenant roles. Platform-role holders pass regardless.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		if identity.PlatformRole != nil {
			c.Next()
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		abortForbidden(c)
	}
}

// RequirePlatformRole gates the cross-tenant operator surface.
func RequirePlatformRole(roles ...model.PlatformRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		if identity.PlatformRole == nil {
			abortForbidden(c)
			return
		}
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, role := range roles {
			if *identity.PlatformRole == role {
				c.Next()
				return
			}
		}
		abortForbidden(c)
	}
}

// WithIdentity attaches the caller's identity to the context the way
// RequireAuth does.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// WithSession attaches the full session to the context.
func WithSession(ctx context.Context, sess *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// GetIdentity returns the authenticated caller attached by RequireAuth.
func GetIdentity(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}

// GetSession returns the full session attached by RequireAuth. Handlers
// that need more than the identity projection (logout, session listing)
// use this.
func GetSession(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

func identityFrom(c *gin.Context) (model.Identity, bool) {
	return GetIdentity(c.Request.Context())
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
}
