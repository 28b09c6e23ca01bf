package session

import (
	"context"
	"time"

	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/store"
)

type mockSessionStore struct {
	createFn          func(ctx context.Context, sess *model.Session) error
	getFn             func(ctx context.Context, id string) (*model.Session, error)
	touchFn           func(ctx context.Context, sess *model.Session) error
	updateSSOTokensFn func(ctx context.Context, sess *model.Session, accessToken string, refreshToken *string, tokenExpiry *time.Time) error
	needsSSORefreshFn func(sess *model.Session) bool
	deleteFn          func(ctx context.Context, id string) error
	deleteByUserFn    func(ctx context.Context, userID int64) (int64, error)
	deleteExpiredFn   func(ctx context.Context) (int64, error)
	listByUserFn      func(ctx context.Context, userID int64) ([]model.Session, error)

	getCalls   int
	touchCalls int
}

var _ store.SessionStore = (*mockSessionStore)(nil)

func (m *mockSessionStore) Create(ctx context.Context, sess *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	m.getCalls++
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) Touch(ctx context.Context, sess *model.Session) error {
	m.touchCalls++
	if m.touchFn != nil {
		return m.touchFn(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) UpdateSSOTokens(ctx context.Context, sess *model.Session, accessToken string, refreshToken *string, tokenExpiry *time.Time) error {
	if m.updateSSOTokensFn != nil {
		return m.updateSSOTokensFn(ctx, sess, accessToken, refreshToken, tokenExpiry)
	}
	return nil
}

func (m *mockSessionStore) NeedsSSORefresh(sess *model.Session) bool {
	if m.needsSSORefreshFn != nil {
		return m.needsSSORefreshFn(sess)
	}
	return false
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return 0, nil
}

func (m *mockSessionStore) ListByUser(ctx context.Context, userID int64) ([]model.Session, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}
