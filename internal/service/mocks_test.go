package service_test

import (
	"context"
	"time"

	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/service"
	"loomworks.app/api-server/internal/store"
)

type mockUserStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*model.User, error)
	getByWorkOSIDFn func(ctx context.Context, workosID string) (*model.User, error)
	createFn        func(ctx context.Context, user *model.User) error
	updateFn        func(ctx context.Context, user *model.User) error
	updateRoleFn    func(ctx context.Context, id int64, role model.Role) (*model.User, error)
	setActiveFn     func(ctx context.Context, id int64, active bool) (*model.User, error)
	listByTenantFn  func(ctx context.Context, tenantID int64) ([]model.User, error)
	updateRoleCalls int
	setActiveCalls  int
}

var _ store.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error) {
	if m.getByWorkOSIDFn != nil {
		return m.getByWorkOSIDFn(ctx, workosID)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Update(ctx context.Context, user *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdateRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	m.updateRoleCalls++
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, id, role)
	}
	return &model.User{ID: id, Role: role}, nil
}

func (m *mockUserStore) SetActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	m.setActiveCalls++
	if m.setActiveFn != nil {
		return m.setActiveFn(ctx, id, active)
	}
	return &model.User{ID: id, IsActive: active}, nil
}

func (m *mockUserStore) ListByTenant(ctx context.Context, tenantID int64) ([]model.User, error) {
	if m.listByTenantFn != nil {
		return m.listByTenantFn(ctx, tenantID)
	}
	return []model.User{}, nil
}

type mockSessionStore struct {
	createFn          func(ctx context.Context, session *model.Session) error
	getFn             func(ctx context.Context, id string) (*model.Session, error)
	touchFn           func(ctx context.Context, session *model.Session) error
	deleteFn          func(ctx context.Context, id string) error
	deleteByUserFn    func(ctx context.Context, userID int64) (int64, error)
	listByUserFn      func(ctx context.Context, userID int64) ([]model.Session, error)
	deleteByUserCalls int
}

var _ store.SessionStore = (*mockSessionStore)(nil)

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) Touch(ctx context.Context, session *model.Session) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) UpdateSSOTokens(ctx context.Context, session *model.Session, accessToken string, refreshToken *string, tokenExpiry *time.Time) error {
	return nil
}

func (m *mockSessionStore) NeedsSSORefresh(session *model.Session) bool {
	return false
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	m.deleteByUserCalls++
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockSessionStore) ListByUser(ctx context.Context, userID int64) ([]model.Session, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []model.Session{}, nil
}

type mockTenantStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Tenant, error)
	getBySlugFn func(ctx context.Context, slug string) (*model.Tenant, error)
	createFn    func(ctx context.Context, tenant *model.Tenant) error
	updateFn    func(ctx context.Context, tenant *model.Tenant) error
	deleteFn    func(ctx context.Context, id int64) error
	listFn      func(ctx context.Context) ([]model.Tenant, error)
	createCalls int
}

var _ store.TenantStore = (*mockTenantStore)(nil)

func (m *mockTenantStore) GetByID(ctx context.Context, id int64) (*model.Tenant, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockTenantStore) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockTenantStore) Create(ctx context.Context, tenant *model.Tenant) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, tenant)
	}
	return nil
}

func (m *mockTenantStore) Update(ctx context.Context, tenant *model.Tenant) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tenant)
	}
	return nil
}

func (m *mockTenantStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTenantStore) List(ctx context.Context) ([]model.Tenant, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Tenant{}, nil
}

type mockProjectStore struct {
	getByIDFn      func(ctx context.Context, id int64) (*model.Project, error)
	createFn       func(ctx context.Context, project *model.Project) error
	updateFn       func(ctx context.Context, project *model.Project) error
	updateStatusFn func(ctx context.Context, id int64, status model.ProjectStatus) (*model.Project, error)
	deleteFn       func(ctx context.Context, id int64) error
	listByTenantFn func(ctx context.Context, tenantID int64) ([]model.Project, error)
}

var _ store.ProjectStore = (*mockProjectStore)(nil)

func (m *mockProjectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockProjectStore) Create(ctx context.Context, project *model.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) Update(ctx context.Context, project *model.Project) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) UpdateStatus(ctx context.Context, id int64, status model.ProjectStatus) (*model.Project, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return &model.Project{ID: id, Status: status}, nil
}

func (m *mockProjectStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockProjectStore) ListByTenant(ctx context.Context, tenantID int64) ([]model.Project, error) {
	if m.listByTenantFn != nil {
		return m.listByTenantFn(ctx, tenantID)
	}
	return []model.Project{}, nil
}

type mockProducer struct {
	enqueueFn func(ctx context.Context, event queue.Event) error
	events    []queue.Event
}

var _ queue.Producer = (*mockProducer)(nil)

func (m *mockProducer) Enqueue(ctx context.Context, event queue.Event) error {
	m.events = append(m.events, event)
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, event)
	}
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}

type mockStoreProvider struct {
	tenants  store.TenantStore
	users    store.UserStore
	sessions store.SessionStore
	projects store.ProjectStore
	sows     store.SowStore
}

var _ service.StoreProvider = (*mockStoreProvider)(nil)

func (m *mockStoreProvider) Tenants() store.TenantStore {
	return m.tenants
}

func (m *mockStoreProvider) Users() store.UserStore {
	return m.users
}

func (m *mockStoreProvider) Sessions() store.SessionStore {
	return m.sessions
}

func (m *mockStoreProvider) Projects() store.ProjectStore {
	return m.projects
}

func (m *mockStoreProvider) Sows() store.SowStore {
	return m.sows
}

type mockTxRunner struct {
	provider service.StoreProvider
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(m.provider)
}
