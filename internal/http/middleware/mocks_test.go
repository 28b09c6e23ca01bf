package middleware_test

import (
	"context"
	"time"

	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
	"loomworks.app/api-server/internal/store"
)

type mockSessionStore struct {
	getFn          func(ctx context.Context, id string) (*model.Session, error)
	touchFn        func(ctx context.Context, session *model.Session) error
	needsRefreshFn func(session *model.Session) bool
	touchCalls     int
}

var _ store.SessionStore = (*mockSessionStore)(nil)

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) Touch(ctx context.Context, session *model.Session) error {
	m.touchCalls++
	if m.touchFn != nil {
		return m.touchFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) UpdateSSOTokens(ctx context.Context, session *model.Session, accessToken string, refreshToken *string, tokenExpiry *time.Time) error {
	return nil
}

func (m *mockSessionStore) NeedsSSORefresh(session *model.Session) bool {
	if m.needsRefreshFn != nil {
		return m.needsRefreshFn(session)
	}
	return false
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockSessionStore) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return 0, nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockSessionStore) ListByUser(ctx context.Context, userID int64) ([]model.Session, error) {
	return []model.Session{}, nil
}

type mockAuthService struct {
	refreshFn    func(ctx context.Context, sess *model.Session) error
	refreshCalls int
}

var _ service.AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) PasswordLogin(ctx context.Context, email, password string, ip, userAgent *string) (*model.Session, error) {
	return nil, nil
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	return "", nil
}

func (m *mockAuthService) HandleSSOCallback(ctx context.Context, code string, ip, userAgent *string) (*model.Session, error) {
	return nil, nil
}

func (m *mockAuthService) RefreshSSOTokens(ctx context.Context, sess *model.Session) error {
	m.refreshCalls++
	if m.refreshFn != nil {
		return m.refreshFn(ctx, sess)
	}
	return nil
}

func (m *mockAuthService) Logout(ctx context.Context, sess *model.Session) error {
	return nil
}

func (m *mockAuthService) ListSessions(ctx context.Context, userID int64) ([]model.Session, error) {
	return []model.Session{}, nil
}

func (m *mockAuthService) RevokeUserSessions(ctx context.Context, userID int64) (int64, error) {
	return 0, nil
}
