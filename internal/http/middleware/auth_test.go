package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

var _ = Describe("Auth middleware", func() {
	var (
		router       *gin.Engine
		mockSessions *mockSessionStore
		mockAuth     *mockAuthService
		cache        *session.Cache
	)

	sessionCfg := config.SessionConfig{
		CacheTTL:       time.Minute,
		CacheHighWater: 100,
		CacheLowWater:  80,
	}

	ssoProvider := "workos"
	activeSession := func() *model.Session {
		tenantID := int64(42)
		return &model.Session{
			ID:             "tok-valid",
			UserID:         7,
			Email:          "dana@acme.test",
			Name:           "Dana",
			Role:           model.RoleManager,
			ActiveTenantID: &tenantID,
			ExpiresAt:      time.Now().Add(time.Hour),
		}
	}

	perform := func(headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		mockSessions = &mockSessionStore{}
		mockAuth = &mockAuthService{}
		cache = session.NewCache(mockSessions, sessionCfg)

		authMw := middleware.NewAuthMiddleware(cache, mockSessions, mockAuth)
		router = gin.New()
		router.GET("/protected", authMw.RequireAuth(), func(c *gin.Context) {
			identity, ok := middleware.GetIdentity(c.Request.Context())
			Expect(ok).To(BeTrue())
			c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
		})
	})

	Describe("RequireAuth", func() {
		It("rejects a request without the session header", func() {
			rec := perform(nil)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(MatchJSON(`{"message": "Not authenticated"}`))
		})

		It("rejects an unknown session token", func() {
			mockSessions.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			rec := perform(map[string]string{"X-Session-Id": "tok-unknown"})

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(MatchJSON(`{"message": "Not authenticated"}`))
		})

		It("fails closed when the store errors", func() {
			mockSessions.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return nil, errors.New("connection refused")
			}

			rec := perform(map[string]string{"X-Session-Id": "tok-valid"})

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("admits a valid session and slides its expiry", func() {
			sess := activeSession()
			mockSessions.getFn = func(_ context.Context, id string) (*model.Session, error) {
				Expect(id).To(Equal(sess.ID))
				return sess, nil
			}

			rec := perform(map[string]string{"X-Session-Id": sess.ID})

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"user_id": 7}`))
			Expect(mockSessions.touchCalls).To(Equal(1))
		})

		It("still admits the request when touch fails", func() {
			sess := activeSession()
			mockSessions.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return sess, nil
			}
			mockSessions.touchFn = func(_ context.Context, _ *model.Session) error {
				return errors.New("write timeout")
			}

			rec := perform(map[string]string{"X-Session-Id": sess.ID})

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		Context("with an SSO session near token expiry", func() {
			It("refreshes provider tokens before continuing", func() {
				sess := activeSession()
				sess.SSOProvider = &ssoProvider
				mockSessions.getFn = func(_ context.Context, _ string) (*model.Session, error) {
					return sess, nil
				}
				mockSessions.needsRefreshFn = func(_ *model.Session) bool {
					return true
				}

				rec := perform(map[string]string{"X-Session-Id": sess.ID})

				Expect(rec.Code).To(Equal(http.StatusOK))
				Expect(mockAuth.refreshCalls).To(Equal(1))
			})

			It("does not block the request when the refresh fails", func() {
				sess := activeSession()
				sess.SSOProvider = &ssoProvider
				mockSessions.getFn = func(_ context.Context, _ string) (*model.Session, error) {
					return sess, nil
				}
				mockSessions.needsRefreshFn = func(_ *model.Session) bool {
					return true
				}
				mockAuth.refreshFn = func(_ context.Context, _ *model.Session) error {
					return errors.New("idp unreachable")
				}

				rec := perform(map[string]string{"X-Session-Id": sess.ID})

				Expect(rec.Code).To(Equal(http.StatusOK))
			})
		})
	})

	Describe("RequireRole", func() {
		BeforeEach(func() {
			sess := activeSession()
			mockSessions.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return sess, nil
			}

			authMw := middleware.NewAuthMiddleware(cache, mockSessions, mockAuth)
			router = gin.New()
			admin := router.Group("/", authMw.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
			admin.GET("/protected", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})
		})

		It("rejects a caller whose role is not listed", func() {
			rec := perform(map[string]string{"X-Session-Id": "tok-valid"})

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(rec.Body.String()).To(MatchJSON(`{"message": "Insufficient permissions"}`))
		})
	})

	Describe("RequirePlatformRole", func() {
		newRouterFor := func(sess *model.Session) {
			mockSessions.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return sess, nil
			}
			authMw := middleware.NewAuthMiddleware(cache, mockSessions, mockAuth)
			router = gin.New()
			ops := router.Group("/", authMw.RequireAuth(), middleware.RequirePlatformRole())
			ops.GET("/protected", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})
		}

		It("rejects ordinary tenant users", func() {
			newRouterFor(activeSession())

			rec := perform(map[string]string{"X-Session-Id": "tok-valid"})

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("admits platform operators", func() {
			sess := activeSession()
			operator := model.PlatformRoleOperator
			sess.PlatformRole = &operator
			newRouterFor(sess)

			rec := perform(map[string]string{"X-Session-Id": "tok-valid"})

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
