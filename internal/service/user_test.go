package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/service"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

var _ = Describe("UserService", func() {
	var (
		svc          service.UserService
		mockUsers    *mockUserStore
		mockSessions *mockSessionStore
		cache        *session.Cache
		producer     *mockProducer
		tx           *mockTxRunner
		ctx          context.Context
	)

	sessionCfg := config.SessionConfig{
		CacheTTL:       time.Minute,
		CacheHighWater: 100,
		CacheLowWater:  80,
	}

	tenantID := int64(42)
	otherTenantID := int64(43)

	platformOperator := model.PlatformRoleOperator
	platformActor := model.Identity{UserID: 1, Role: model.RoleAdmin, PlatformRole: &platformOperator}
	tenantAdmin := model.Identity{UserID: 2, Role: model.RoleAdmin, ActiveTenantID: &tenantID}

	BeforeEach(func() {
		ctx = context.Background()
		mockUsers = &mockUserStore{}
		mockSessions = &mockSessionStore{}
		cache = session.NewCache(mockSessions, sessionCfg)
		producer = &mockProducer{}
		tx = &mockTxRunner{provider: &mockStoreProvider{users: mockUsers, sessions: mockSessions}}
		svc = service.NewUserService(mockUsers, tx, cache, service.NewAuditor(producer))

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("hashes the password and stores the user", func() {
			var captured *model.User
			mockUsers.createFn = func(_ context.Context, u *model.User) error {
				captured = u
				return nil
			}

			password := "a long enough password"
			user, err := svc.Create(ctx, platformActor, service.CreateUserParams{
				TenantID: &tenantID,
				Email:    "dana@acme.test",
				Name:     "Dana",
				Password: &password,
				Role:     model.RoleConsultant,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.IsActive).To(BeTrue())
			Expect(captured).NotTo(BeNil())
			Expect(captured.PasswordHash).NotTo(BeNil())
			Expect(*captured.PasswordHash).NotTo(Equal(password))
			Expect(bcrypt.CompareHashAndPassword([]byte(*captured.PasswordHash), []byte(password))).To(Succeed())
		})

		It("forces a tenant admin's new users into their own tenant", func() {
			var captured *model.User
			mockUsers.createFn = func(_ context.Context, u *model.User) error {
				captured = u
				return nil
			}

			_, err := svc.Create(ctx, tenantAdmin, service.CreateUserParams{
				TenantID: &otherTenantID,
				Email:    "lee@acme.test",
				Name:     "Lee",
				Role:     model.RoleConsultant,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(captured.TenantID).To(Equal(&tenantID))
		})

		It("allows password-less accounts for SSO-provisioned users", func() {
			var captured *model.User
			mockUsers.createFn = func(_ context.Context, u *model.User) error {
				captured = u
				return nil
			}

			_, err := svc.Create(ctx, tenantAdmin, service.CreateUserParams{
				Email: "sso-only@acme.test",
				Name:  "SSO Only",
				Role:  model.RoleClient,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(captured.PasswordHash).To(BeNil())
		})
	})

	Describe("Get", func() {
		It("hides users outside the actor's tenant", func() {
			mockUsers.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return &model.User{ID: 9, TenantID: &otherTenantID}, nil
			}

			user, err := svc.Get(ctx, tenantAdmin, 9)

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(user).To(BeNil())
		})

		It("lets platform operators see any user", func() {
			mockUsers.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return &model.User{ID: 9, TenantID: &otherTenantID}, nil
			}

			user, err := svc.Get(ctx, platformActor, 9)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(9)))
		})
	})

	Describe("ChangeRole", func() {
		BeforeEach(func() {
			mockUsers.getByIDFn = func(_ context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, TenantID: &tenantID, Role: model.RoleConsultant}, nil
			}
		})

		It("updates the role and revokes the user's sessions together", func() {
			cache.Put("tok-1", &model.Session{ID: "tok-1", UserID: 9, Role: model.RoleConsultant})

			user, err := svc.ChangeRole(ctx, tenantAdmin, 9, model.RoleManager)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(model.RoleManager))
			Expect(mockUsers.updateRoleCalls).To(Equal(1))
			Expect(mockSessions.deleteByUserCalls).To(Equal(1))
			Expect(cache.Len()).To(BeZero())
		})

		It("emits an audit event naming old and new role", func() {
			_, err := svc.ChangeRole(ctx, tenantAdmin, 9, model.RoleManager)

			Expect(err).NotTo(HaveOccurred())
			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Action).To(Equal(queue.ActionUserRoleChanged))
			Expect(producer.events[0].Detail).To(Equal("consultant -> manager"))
		})

		It("rolls back when session revocation fails", func() {
			mockSessions.deleteByUserFn = func(_ context.Context, _ int64) (int64, error) {
				return 0, errors.New("deadlock detected")
			}

			user, err := svc.ChangeRole(ctx, tenantAdmin, 9, model.RoleManager)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("deadlock detected"))
			Expect(user).To(BeNil())
			Expect(producer.events).To(BeEmpty())
		})
	})

	Describe("Deactivate", func() {
		BeforeEach(func() {
			mockUsers.getByIDFn = func(_ context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, TenantID: &tenantID, IsActive: true}, nil
			}
		})

		It("disables the account and revokes sessions", func() {
			cache.Put("tok-1", &model.Session{ID: "tok-1", UserID: 9})
			cache.Put("tok-2", &model.Session{ID: "tok-2", UserID: 10})

			user, err := svc.Deactivate(ctx, tenantAdmin, 9)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsActive).To(BeFalse())
			Expect(mockUsers.setActiveCalls).To(Equal(1))
			Expect(mockSessions.deleteByUserCalls).To(Equal(1))
			Expect(cache.Len()).To(Equal(1))
		})
	})

	Describe("ListByTenant", func() {
		It("rejects a tenant admin listing another tenant", func() {
			users, err := svc.ListByTenant(ctx, tenantAdmin, otherTenantID)

			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(users).To(BeNil())
		})
	})
})
