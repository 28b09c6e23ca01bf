package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	tenantID := int64(42)

	newSession := func() *model.Session {
		return &model.Session{
			ID:             "tok_abc123",
			UserID:         7,
			Email:          "ana@acme.test",
			Name:           "Ana",
			Role:           model.RoleManager,
			ActiveTenantID: &tenantID,
			CreatedAt:      time.Now(),
			LastActivity:   time.Now(),
			ExpiresAt:      time.Now().Add(8 * time.Hour),
		}
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAuthService{}
	})

	Describe("Login", func() {
		BeforeEach(func() {
			h := handler.NewAuthHandler(svc, "https://app.loomworks.test", false)
			router.POST("/auth/login", h.Login)
		})

		It("returns the session payload on success", func() {
			svc.passwordLoginFn = func(_ context.Context, email, _ string, _, _ *string) (*model.Session, error) {
				sess := newSession()
				sess.Email = email
				return sess, nil
			}

			body, _ := json.Marshal(map[string]string{
				"email":    "ana@acme.test",
				"password": "correct horse",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["sessionId"]).To(Equal("tok_abc123"))
			Expect(resp["id"]).To(Equal("7"))
			Expect(resp["tenantId"]).To(Equal("42"))
			Expect(resp["role"]).To(Equal("manager"))
		})

		It("returns 400 when the body fails validation", func() {
			body, _ := json.Marshal(map[string]string{"email": "not-an-email"})
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 401 on invalid credentials", func() {
			svc.passwordLoginFn = func(_ context.Context, _, _ string, _, _ *string) (*model.Session, error) {
				return nil, service.ErrInvalidCredentials
			}

			body, _ := json.Marshal(map[string]string{
				"email":    "ana@acme.test",
				"password": "wrong password",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 403 for a deactivated account", func() {
			svc.passwordLoginFn = func(_ context.Context, _, _ string, _, _ *string) (*model.Session, error) {
				return nil, service.ErrUserInactive
			}

			body, _ := json.Marshal(map[string]string{
				"email":    "ana@acme.test",
				"password": "correct horse",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("Logout", func() {
		It("logs out the current session", func() {
			sess := newSession()
			var loggedOut *model.Session
			svc.logoutFn = func(_ context.Context, s *model.Session) error {
				loggedOut = s
				return nil
			}

			h := handler.NewAuthHandler(svc, "https://app.loomworks.test", false)
			router.POST("/auth/logout", seedSession(sess), h.Logout)

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(loggedOut).To(Equal(sess))
		})

		It("returns 401 without a session", func() {
			h := handler.NewAuthHandler(svc, "https://app.loomworks.test", false)
			router.POST("/auth/logout", h.Logout)

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(MatchJSON(`{"message": "Not authenticated"}`))
		})
	})

	Describe("ListSessions", func() {
		It("flags the session making the request", func() {
			sess := newSession()
			other := *newSession()
			other.ID = "tok_other"
			svc.listSessionsFn = func(_ context.Context, userID int64) ([]model.Session, error) {
				Expect(userID).To(Equal(sess.UserID))
				return []model.Session{*sess, other}, nil
			}

			h := handler.NewAuthHandler(svc, "https://app.loomworks.test", false)
			router.GET("/auth/sessions", seedSession(sess), h.ListSessions)

			req := httptest.NewRequest(http.MethodGet, "/auth/sessions", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Sessions []struct {
					ID      string `json:"id"`
					Current bool   `json:"current"`
				} `json:"sessions"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Sessions).To(HaveLen(2))
			Expect(resp.Sessions[0].Current).To(BeTrue())
			Expect(resp.Sessions[1].Current).To(BeFalse())
		})
	})

	Describe("RevokeSessions", func() {
		It("reports the number of sessions revoked", func() {
			sess := newSession()
			svc.revokeSessionsFn = func(_ context.Context, _ int64) (int64, error) {
				return 3, nil
			}

			h := handler.NewAuthHandler(svc, "https://app.loomworks.test", false)
			router.POST("/auth/sessions/revoke", seedSession(sess), h.RevokeSessions)

			req := httptest.NewRequest(http.MethodPost, "/auth/sessions/revoke", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"revoked": 3}`))
		})

		It("returns 500 when revocation fails", func() {
			sess := newSession()
			svc.revokeSessionsFn = func(_ context.Context, _ int64) (int64, error) {
				return 0, errors.New("store down")
			}

			h := handler.NewAuthHandler(svc, "https://app.loomworks.test", false)
			router.POST("/auth/sessions/revoke", seedSession(sess), h.RevokeSessions)

			req := httptest.NewRequest(http.MethodPost, "/auth/sessions/revoke", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
