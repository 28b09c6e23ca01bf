package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
)

// seedIdentity stands in for RequireAuth on test routers.
func seedIdentity(actor model.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := middleware.WithIdentity(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func seedSession(sess *model.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := middleware.WithIdentity(c.Request.Context(), sess.Identity())
		ctx = middleware.WithSession(ctx, sess)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

type mockAuthService struct {
	passwordLoginFn  func(ctx context.Context, email, password string, ip, userAgent *string) (*model.Session, error)
	logoutFn         func(ctx context.Context, sess *model.Session) error
	listSessionsFn   func(ctx context.Context, userID int64) ([]model.Session, error)
	revokeSessionsFn func(ctx context.Context, userID int64) (int64, error)
}

var _ service.AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) PasswordLogin(ctx context.Context, email, password string, ip, userAgent *string) (*model.Session, error) {
	if m.passwordLoginFn != nil {
		return m.passwordLoginFn(ctx, email, password, ip, userAgent)
	}
	return nil, nil
}

func (m *mockAuthService) GetAuthorizationURL(_ string) (string, error) {
	return "https://sso.example.com/authorize", nil
}

func (m *mockAuthService) HandleSSOCallback(_ context.Context, _ string, _, _ *string) (*model.Session, error) {
	return nil, nil
}

func (m *mockAuthService) RefreshSSOTokens(_ context.Context, _ *model.Session) error {
	return nil
}

func (m *mockAuthService) Logout(ctx context.Context, sess *model.Session) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sess)
	}
	return nil
}

func (m *mockAuthService) ListSessions(ctx context.Context, userID int64) ([]model.Session, error) {
	if m.listSessionsFn != nil {
		return m.listSessionsFn(ctx, userID)
	}
	return []model.Session{}, nil
}

func (m *mockAuthService) RevokeUserSessions(ctx context.Context, userID int64) (int64, error) {
	if m.revokeSessionsFn != nil {
		return m.revokeSessionsFn(ctx, userID)
	}
	return 0, nil
}

type mockUserService struct {
	createFn        func(ctx context.Context, actor model.Identity, params service.CreateUserParams) (*model.User, error)
	getFn           func(ctx context.Context, actor model.Identity, id int64) (*model.User, error)
	listByTenantFn  func(ctx context.Context, actor model.Identity, tenantID int64) ([]model.User, error)
	updateProfileFn func(ctx context.Context, actor model.Identity, id int64, name, email string) (*model.User, error)
	changeRoleFn    func(ctx context.Context, actor model.Identity, id int64, role model.Role) (*model.User, error)
	deactivateFn    func(ctx context.Context, actor model.Identity, id int64) (*model.User, error)
}

var _ service.UserService = (*mockUserService)(nil)

func (m *mockUserService) Create(ctx context.Context, actor model.Identity, params service.CreateUserParams) (*model.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, params)
	}
	return nil, nil
}

func (m *mockUserService) Get(ctx context.Context, actor model.Identity, id int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockUserService) ListByTenant(ctx context.Context, actor model.Identity, tenantID int64) ([]model.User, error) {
	if m.listByTenantFn != nil {
		return m.listByTenantFn(ctx, actor, tenantID)
	}
	return []model.User{}, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, actor model.Identity, id int64, name, email string) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, actor, id, name, email)
	}
	return nil, nil
}

func (m *mockUserService) ChangeRole(ctx context.Context, actor model.Identity, id int64, role model.Role) (*model.User, error) {
	if m.changeRoleFn != nil {
		return m.changeRoleFn(ctx, actor, id, role)
	}
	return nil, nil
}

func (m *mockUserService) Deactivate(ctx context.Context, actor model.Identity, id int64) (*model.User, error) {
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, actor, id)
	}
	return nil, nil
}

type mockTimeEntryService struct {
	submitFn        func(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error)
	getFn           func(ctx context.Context, actor model.Identity, id int64) (*model.TimeEntry, error)
	listByProjectFn func(ctx context.Context, actor model.Identity, projectID int64) ([]model.TimeEntry, error)
	listMineFn      func(ctx context.Context, actor model.Identity) ([]model.TimeEntry, error)
	updateFn        func(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error)
	decideFn        func(ctx context.Context, actor model.Identity, id int64, approve bool) (*model.TimeEntry, error)
	deleteFn        func(ctx context.Context, actor model.Identity, id int64) error
}

var _ service.TimeEntryService = (*mockTimeEntryService)(nil)

func (m *mockTimeEntryService) Submit(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, actor, entry)
	}
	return nil, nil
}

func (m *mockTimeEntryService) Get(ctx context.Context, actor model.Identity, id int64) (*model.TimeEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, id)
	}
	return nil, nil
}

func (m *mockTimeEntryService) ListByProject(ctx context.Context, actor model.Identity, projectID int64) ([]model.TimeEntry, error) {
	if m.listByProjectFn != nil {
		return m.listByProjectFn(ctx, actor, projectID)
	}
	return []model.TimeEntry{}, nil
}

func (m *mockTimeEntryService) ListMine(ctx context.Context, actor model.Identity) ([]model.TimeEntry, error) {
	if m.listMineFn != nil {
		return m.listMineFn(ctx, actor)
	}
	return []model.TimeEntry{}, nil
}

func (m *mockTimeEntryService) Update(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, entry)
	}
	return nil, nil
}

func (m *mockTimeEntryService) Decide(ctx context.Context, actor model.Identity, id int64, approve bool) (*model.TimeEntry, error) {
	if m.decideFn != nil {
		return m.decideFn(ctx, actor, id, approve)
	}
	return nil, nil
}

func (m *mockTimeEntryService) Delete(ctx context.Context, actor model.Identity, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, id)
	}
	return nil
}
