package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/service"
	"loomworks.app/api-server/internal/store"
)

var _ = Describe("TenantService", func() {
	var (
		svc         service.TenantService
		mockTenants *mockTenantStore
		producer    *mockProducer
		ctx         context.Context
	)

	operator := model.PlatformRoleOperator
	actor := model.Identity{UserID: 1, PlatformRole: &operator}

	BeforeEach(func() {
		ctx = context.Background()
		mockTenants = &mockTenantStore{}
		producer = &mockProducer{}
		svc = service.NewTenantService(mockTenants, service.NewAuditor(producer))

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		Context("when the derived slug is free", func() {
			It("slugifies the name and creates an active tenant", func() {
				var captured *model.Tenant
				mockTenants.createFn = func(_ context.Context, t *model.Tenant) error {
					captured = t
					return nil
				}

				tenant, err := svc.Create(ctx, actor, "Acme Consulting", nil)

				Expect(err).NotTo(HaveOccurred())
				Expect(tenant.ID).NotTo(BeZero())
				Expect(tenant.Slug).To(Equal("acme-consulting"))
				Expect(tenant.Status).To(Equal(model.TenantStatusActive))
				Expect(captured).To(Equal(tenant))

				Expect(producer.events).To(HaveLen(1))
				Expect(producer.events[0].Action).To(Equal(queue.ActionTenantCreated))
			})

			It("prefers an explicit slug over the name", func() {
				slug := "acme"
				tenant, err := svc.Create(ctx, actor, "Acme Consulting", &slug)

				Expect(err).NotTo(HaveOccurred())
				Expect(tenant.Slug).To(Equal("acme"))
			})
		})

		Context("when the slug is taken", func() {
			It("appends a numeric suffix until one is free", func() {
				taken := map[string]bool{"acme": true, "acme-1": true}
				mockTenants.getBySlugFn = func(_ context.Context, slug string) (*model.Tenant, error) {
					if taken[slug] {
						return &model.Tenant{Slug: slug}, nil
					}
					return nil, store.ErrNotFound
				}

				tenant, err := svc.Create(ctx, actor, "Acme", nil)

				Expect(err).NotTo(HaveOccurred())
				Expect(tenant.Slug).To(Equal("acme-2"))
			})
		})

		Context("when the slug lookup fails", func() {
			It("propagates the error", func() {
				mockTenants.getBySlugFn = func(_ context.Context, _ string) (*model.Tenant, error) {
					return nil, errors.New("connection refused")
				}

				tenant, err := svc.Create(ctx, actor, "Acme", nil)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("connection refused"))
				Expect(tenant).To(BeNil())
				Expect(mockTenants.createCalls).To(BeZero())
			})
		})
	})

	Describe("Update", func() {
		It("loads, mutates and persists the tenant", func() {
			mockTenants.getByIDFn = func(_ context.Context, tenantID int64) (*model.Tenant, error) {
				return &model.Tenant{ID: tenantID, Name: "Old Name", Status: model.TenantStatusActive}, nil
			}
			var captured *model.Tenant
			mockTenants.updateFn = func(_ context.Context, t *model.Tenant) error {
				captured = t
				return nil
			}

			tenant, err := svc.Update(ctx, 42, "New Name", model.TenantStatusSuspended)

			Expect(err).NotTo(HaveOccurred())
			Expect(tenant.Name).To(Equal("New Name"))
			Expect(tenant.Status).To(Equal(model.TenantStatusSuspended))
			Expect(captured).To(Equal(tenant))
		})
	})

	Describe("Delete", func() {
		It("deletes and emits an audit event", func() {
			var deletedID int64
			mockTenants.deleteFn = func(_ context.Context, tenantID int64) error {
				deletedID = tenantID
				return nil
			}

			Expect(svc.Delete(ctx, actor, 42)).To(Succeed())
			Expect(deletedID).To(Equal(int64(42)))
			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Action).To(Equal(queue.ActionTenantDeleted))
		})
	})
})
