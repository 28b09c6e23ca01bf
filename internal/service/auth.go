package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"
	"golang.org/x/crypto/bcrypt"
	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid authorization code")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is deactivated")
	ErrSessionExpired     = errors.New("session expired")
)

// WorkOS access tokens are short lived; the stored expiry drives the
// proactive refresh in the middleware.
const ssoTokenLifetime = 5 * time.Minute

const ssoProviderWorkOS = "workos"

// A well-formed hash of a throwaway value, compared against when the
// account does not exist.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService interface {
	// PasswordLogin authenticates with email and password and opens a
	// short-duration session.
	PasswordLogin(ctx context.Context, email, password string, ip, userAgent *string) (*model.Session, error)
	// GetAuthorizationURL returns the hosted SSO login URL.
	GetAuthorizationURL(state string) (string, error)
	// HandleSSOCallback exchanges the authorization code and opens a
	// long-duration SSO session carrying the provider tokens.
	HandleSSOCallback(ctx context.Context, code string, ip, userAgent *string) (*model.Session, error)
	// RefreshSSOTokens exchanges the session's refresh token for a new
	// token pair and extends the session.
	RefreshSSOTokens(ctx context.Context, sess *model.Session) error
	Logout(ctx context.Context, sess *model.Session) error
	ListSessions(ctx context.Context, userID int64) ([]model.Session, error)
	// RevokeUserSessions deletes every session the user holds and purges
	// them from the cache.
	RevokeUserSessions(ctx context.Context, userID int64) (int64, error)
}

type authService struct {
	users    store.UserStore
	sessions store.SessionStore
	cache    *session.Cache
	cfg      config.WorkOSConfig
	auditor  *Auditor
}

func NewAuthService(
	users store.UserStore,
	sessions store.SessionStore,
	cache *session.Cache,
	cfg config.WorkOSConfig,
	auditor *Auditor,
) AuthService {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &authService{
		users:    users,
		sessions: sessions,
		cache:    cache,
		cfg:      cfg,
		auditor:  auditor,
	}
}

func (s *authService) PasswordLogin(ctx context.Context, email, password string, ip, userAgent *string) (*model.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison so existing and unknown accounts take
			// the same time.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.openSession(ctx, user, nil, nil, nil, nil, ip, userAgent)
	if err != nil {
		return nil, err
	}

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionLogin,
		TenantID: user.TenantID,
		ActorID:  &user.ID,
		Entity:   "session",
		Detail:   "password",
	})
	return sess, nil
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.cfg.ClientID,
		RedirectURI: s.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (s *authService) HandleSSOCallback(ctx context.Context, code string, ip, userAgent *string) (*model.Session, error) {
	authResponse, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, ErrInvalidCode
	}

	user, err := s.lookupSSOUser(ctx, authResponse.User)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	provider := ssoProviderWorkOS
	tokenExpiry := time.Now().Add(ssoTokenLifetime)
	var refreshToken *string
	if authResponse.RefreshToken != "" {
		refreshToken = &authResponse.RefreshToken
	}

	sess, err := s.openSession(ctx, user, &provider, &authResponse.AccessToken, refreshToken, &tokenExpiry, ip, userAgent)
	if err != nil {
		return nil, err
	}

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionLogin,
		TenantID: user.TenantID,
		ActorID:  &user.ID,
		Entity:   "session",
		Detail:   "sso",
	})
	return sess, nil
}

func (s *authService) lookupSSOUser(ctx context.Context, workosUser usermanagement.User) (*model.User, error) {
	user, err := s.users.GetByWorkOSID(ctx, workosUser.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up user by sso id: %w", err)
	}

	// First SSO login for a user provisioned by email.
	user, err = s.users.GetByEmail(ctx, workosUser.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}
	return user, nil
}

func (s *authService) openSession(
	ctx context.Context,
	user *model.User,
	ssoProvider, ssoToken, ssoRefreshToken *string,
	ssoTokenExpiry *time.Time,
	ip, userAgent *string,
) (*model.Session, error) {
	token, err := session.NewToken()
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		ID:              token,
		UserID:          user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Role:            user.Role,
		PlatformRole:    user.PlatformRole,
		ActiveTenantID:  user.TenantID,
		SSOProvider:     ssoProvider,
		SSOToken:        ssoToken,
		SSORefreshToken: ssoRefreshToken,
		SSOTokenExpiry:  ssoTokenExpiry,
		IPAddress:       ip,
		UserAgent:       userAgent,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		slog.ErrorContext(ctx, "failed to create session", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("creating session: %w", err)
	}
	s.cache.Put(sess.ID, sess)

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"email", user.Email,
		"sso", sess.IsSSO())
	return sess, nil
}

func (s *authService) RefreshSSOTokens(ctx context.Context, sess *model.Session) error {
	if sess.SSORefreshToken == nil {
		return ErrSessionExpired
	}

	authResponse, err := usermanagement.AuthenticateWithRefreshToken(ctx, usermanagement.AuthenticateWithRefreshTokenOpts{
		ClientID:     s.cfg.ClientID,
		RefreshToken: *sess.SSORefreshToken,
	})
	if err != nil {
		return fmt.Errorf("refreshing sso tokens: %w", err)
	}

	tokenExpiry := time.Now().Add(ssoTokenLifetime)
	var refreshToken *string
	if authResponse.RefreshToken != "" {
		refreshToken = &authResponse.RefreshToken
	}

	if err := s.sessions.UpdateSSOTokens(ctx, sess, authResponse.AccessToken, refreshToken, &tokenExpiry); err != nil {
		return fmt.Errorf("storing refreshed tokens: %w", err)
	}
	s.cache.Put(sess.ID, sess)

	slog.InfoContext(ctx, "sso tokens refreshed", "user_id", sess.UserID)
	return nil
}

func (s *authService) Logout(ctx context.Context, sess *model.Session) error {
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	s.cache.Invalidate(sess.ID)

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionLogout,
		TenantID: sess.ActiveTenantID,
		ActorID:  &sess.UserID,
		Entity:   "session",
	})
	return nil
}

func (s *authService) ListSessions(ctx context.Context, userID int64) ([]model.Session, error) {
	return s.sessions.ListByUser(ctx, userID)
}

func (s *authService) RevokeUserSessions(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.sessions.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("revoking sessions: %w", err)
	}
	s.cache.InvalidateUser(userID)

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionSessionsRevoked,
		ActorID:  &userID,
		Entity:   "user",
		EntityID: strconv.FormatInt(userID, 10),
		Detail:   fmt.Sprintf("%d sessions", deleted),
	})

	slog.InfoContext(ctx, "user sessions revoked", "user_id", userID, "deleted", deleted)
	return deleted, nil
}
