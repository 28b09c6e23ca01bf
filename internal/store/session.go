package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type sessionStore struct {
	queries *sqlc.Queries
	cfg     config.SessionConfig
	now     func() time.Time
}

func newSessionStore(queries *sqlc.Queries, cfg config.SessionConfig) SessionStore {
	return &sessionStore{queries: queries, cfg: cfg, now: time.Now}
}

// durationFor picks the session lifetime for the login method. SSO
// sessions live much longer because the provider token is the real
// credential and gets refreshed independently.
func (s *sessionStore) durationFor(sess *model.Session) time.Duration {
	if sess.IsSSO() {
		return s.cfg.SSODuration
	}
	return s.cfg.PasswordDuration
}

func (s *sessionStore) Create(ctx context.Context, sess *model.Session) error {
	expiresAt := s.now().Add(s.durationFor(sess))
	row, err := s.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		ID:              sess.ID,
		UserID:          sess.UserID,
		Email:           sess.Email,
		Name:            sess.Name,
		Role:            string(sess.Role),
		PlatformRole:    platformRoleToString(sess.PlatformRole),
		ActiveTenantID:  sess.ActiveTenantID,
		SsoProvider:     sess.SSOProvider,
		SsoToken:        sess.SSOToken,
		SsoRefreshToken: sess.SSORefreshToken,
		SsoTokenExpiry:  toNullableTimestamp(sess.SSOTokenExpiry),
		IpAddress:       sess.IPAddress,
		UserAgent:       sess.UserAgent,
		ExpiresAt:       toNullableTimestamp(&expiresAt),
	})
	if err != nil {
		return err
	}
	*sess = *toSessionModel(row)
	return nil
}

func (s *sessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	row, err := s.queries.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sess := toSessionModel(row)

	now := s.now()
	if now.After(sess.ExpiresAt) {
		if sess.IsSSO() && now.Before(sess.ExpiresAt.Add(s.cfg.SSOGracePeriod)) {
			// Inside the grace window the session stays usable so the
			// caller can refresh the provider token.
			return sess, nil
		}
		// Expired rows are removed on read. The delete is best effort:
		// the session is unusable either way, and the sweeper will
		// catch anything left behind.
		if delErr := s.queries.DeleteSession(ctx, id); delErr != nil {
			slog.WarnContext(ctx, "failed to delete expired session on read", "error", delErr)
		}
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *sessionStore) Touch(ctx context.Context, sess *model.Session) error {
	expiresAt := s.now().Add(s.durationFor(sess))
	row, err := s.queries.TouchSession(ctx, sqlc.TouchSessionParams{
		ID:        sess.ID,
		ExpiresAt: toNullableTimestamp(&expiresAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*sess = *toSessionModel(row)
	return nil
}

func (s *sessionStore) UpdateSSOTokens(ctx context.Context, sess *model.Session, accessToken string, refreshToken *string, tokenExpiry *time.Time) error {
	expiresAt := s.now().Add(s.cfg.SSODuration)
	row, err := s.queries.UpdateSessionSsoTokens(ctx, sqlc.UpdateSessionSsoTokensParams{
		ID:              sess.ID,
		SsoToken:        &accessToken,
		SsoRefreshToken: refreshToken,
		SsoTokenExpiry:  toNullableTimestamp(tokenExpiry),
		ExpiresAt:       toNullableTimestamp(&expiresAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*sess = *toSessionModel(row)
	return nil
}

func (s *sessionStore) NeedsSSORefresh(sess *model.Session) bool {
	if !sess.IsSSO() || sess.SSOTokenExpiry == nil {
		return false
	}
	return s.now().Add(s.cfg.SSORefreshLookahead).After(*sess.SSOTokenExpiry)
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	return s.queries.DeleteSession(ctx, id)
}

func (s *sessionStore) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return s.queries.DeleteSessionsByUser(ctx, userID)
}

func (s *sessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	now := s.now()
	passwordCutoff := now
	ssoCutoff := now.Add(-s.cfg.SSOGracePeriod)
	return s.queries.DeleteExpiredSessions(ctx, sqlc.DeleteExpiredSessionsParams{
		PasswordCutoff: toNullableTimestamp(&passwordCutoff),
		SsoCutoff:      toNullableTimestamp(&ssoCutoff),
	})
}

func (s *sessionStore) ListByUser(ctx context.Context, userID int64) ([]model.Session, error) {
	rows, err := s.queries.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions := make([]model.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, *toSessionModel(row))
	}
	return sessions, nil
}

func toSessionModel(row sqlc.Session) *model.Session {
	return &model.Session{
		ID:              row.ID,
		UserID:          row.UserID,
		Email:           row.Email,
		Name:            row.Name,
		Role:            model.Role(row.Role),
		PlatformRole:    platformRoleFromString(row.PlatformRole),
		ActiveTenantID:  row.ActiveTenantID,
		SSOProvider:     row.SsoProvider,
		SSOToken:        row.SsoToken,
		SSORefreshToken: row.SsoRefreshToken,
		SSOTokenExpiry:  toTimePointer(row.SsoTokenExpiry),
		IPAddress:       row.IpAddress,
		UserAgent:       row.UserAgent,
		CreatedAt:       row.CreatedAt.Time,
		LastActivity:    row.LastActivity.Time,
		ExpiresAt:       row.ExpiresAt.Time,
	}
}

func platformRoleToString(role *model.PlatformRole) *string {
	if role == nil {
		return nil
	}
	s := string(*role)
	return &s
}

func platformRoleFromString(value *string) *model.PlatformRole {
	if value == nil {
		return nil
	}
	role := model.PlatformRole(*value)
	return &role
}
