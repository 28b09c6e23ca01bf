package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

var _ = Describe("sessionStore", func() {
	var (
		ctx context.Context
		db  *fakeDB
		st  *sessionStore
		now time.Time
		cfg config.SessionConfig
	)

	workos := "workos"

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		cfg = config.SessionConfig{
			PasswordDuration:    24 * time.Hour,
			SSODuration:         7 * 24 * time.Hour,
			SSOGracePeriod:      time.Hour,
			SSORefreshLookahead: 5 * time.Minute,
		}
		db = &fakeDB{}
		st = &sessionStore{
			queries: sqlc.New(db),
			cfg:     cfg,
			now:     func() time.Time { return now },
		}
	})

	storedSession := func(id string, expiresAt time.Time, ssoProvider *string) sqlc.Session {
		return sqlc.Session{
			ID:           id,
			UserID:       7,
			Email:        "ana@acme.test",
			Name:         "Ana Ruiz",
			Role:         "manager",
			SsoProvider:  ssoProvider,
			CreatedAt:    pgtype.Timestamptz{Time: now.Add(-2 * time.Hour), Valid: true},
			LastActivity: pgtype.Timestamptz{Time: now.Add(-time.Minute), Valid: true},
			ExpiresAt:    pgtype.Timestamptz{Time: expiresAt, Valid: true},
		}
	}

	echoRow := func(row sqlc.Session) func(string, []any) pgx.Row {
		return func(string, []any) pgx.Row { return sessionRow{row: row} }
	}

	Describe("Create", func() {
		It("stamps a password session with the password lifetime", func() {
			db.queryRowFn = echoRow(storedSession("tok_pw", now.Add(cfg.PasswordDuration), nil))

			sess := &model.Session{ID: "tok_pw", UserID: 7, Email: "ana@acme.test", Name: "Ana Ruiz", Role: model.RoleManager}
			Expect(st.Create(ctx, sess)).To(Succeed())

			Expect(db.queryRowArgs).To(HaveLen(1))
			expiry := db.queryRowArgs[0][13].(pgtype.Timestamptz)
			Expect(expiry.Valid).To(BeTrue())
			Expect(expiry.Time).To(Equal(now.Add(cfg.PasswordDuration)))
			Expect(sess.ExpiresAt).To(Equal(now.Add(cfg.PasswordDuration)))
		})

		It("stamps an SSO session with the SSO lifetime", func() {
			db.queryRowFn = echoRow(storedSession("tok_sso", now.Add(cfg.SSODuration), &workos))

			sess := &model.Session{ID: "tok_sso", UserID: 7, Email: "ana@acme.test", Name: "Ana Ruiz", Role: model.RoleManager, SSOProvider: &workos}
			Expect(st.Create(ctx, sess)).To(Succeed())

			expiry := db.queryRowArgs[0][13].(pgtype.Timestamptz)
			Expect(expiry.Time).To(Equal(now.Add(cfg.SSODuration)))
		})
	})

	Describe("Get", func() {
		It("returns a live session untouched", func() {
			db.queryRowFn = echoRow(storedSession("tok_live", now.Add(time.Hour), nil))

			sess, err := st.Get(ctx, "tok_live")
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.ID).To(Equal("tok_live"))
			Expect(sess.Email).To(Equal("ana@acme.test"))
			Expect(db.execSQL).To(BeEmpty())
		})

		It("maps a missing row to ErrNotFound", func() {
			_, err := st.Get(ctx, "tok_gone")
			Expect(err).To(MatchError(ErrNotFound))
		})

		It("deletes an expired password session on read", func() {
			db.queryRowFn = echoRow(storedSession("tok_stale", now.Add(-time.Minute), nil))

			_, err := st.Get(ctx, "tok_stale")
			Expect(err).To(MatchError(ErrNotFound))

			Expect(db.execSQL).To(HaveLen(1))
			Expect(db.execSQL[0]).To(ContainSubstring("DELETE FROM sessions"))
			Expect(db.execArgs[0][0]).To(Equal("tok_stale"))
		})

		It("honors an expired SSO session inside the grace window", func() {
			db.queryRowFn = echoRow(storedSession("tok_grace", now.Add(-30*time.Minute), &workos))

			sess, err := st.Get(ctx, "tok_grace")
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.ID).To(Equal("tok_grace"))
			Expect(db.execSQL).To(BeEmpty())
		})

		It("deletes an SSO session once the grace window has passed", func() {
			db.queryRowFn = echoRow(storedSession("tok_past", now.Add(-2*time.Hour), &workos))

			_, err := st.Get(ctx, "tok_past")
			Expect(err).To(MatchError(ErrNotFound))

			Expect(db.execSQL).To(HaveLen(1))
			Expect(db.execArgs[0][0]).To(Equal("tok_past"))
		})
	})

	Describe("Touch", func() {
		It("extends a password session by the password lifetime", func() {
			renewed := now.Add(cfg.PasswordDuration)
			db.queryRowFn = echoRow(storedSession("tok_pw", renewed, nil))

			sess := &model.Session{ID: "tok_pw", ExpiresAt: now.Add(time.Hour)}
			Expect(st.Touch(ctx, sess)).To(Succeed())

			expiry := db.queryRowArgs[0][1].(pgtype.Timestamptz)
			Expect(expiry.Time).To(Equal(renewed))
			Expect(sess.ExpiresAt).To(Equal(renewed))
		})

		It("extends an SSO session by the SSO lifetime", func() {
			renewed := now.Add(cfg.SSODuration)
			db.queryRowFn = echoRow(storedSession("tok_sso", renewed, &workos))

			sess := &model.Session{ID: "tok_sso", SSOProvider: &workos}
			Expect(st.Touch(ctx, sess)).To(Succeed())

			expiry := db.queryRowArgs[0][1].(pgtype.Timestamptz)
			Expect(expiry.Time).To(Equal(renewed))
		})

		It("maps a vanished row to ErrNotFound", func() {
			sess := &model.Session{ID: "tok_gone"}
			Expect(st.Touch(ctx, sess)).To(MatchError(ErrNotFound))
		})
	})

	Describe("UpdateSSOTokens", func() {
		It("extends the session by the SSO lifetime alongside the new tokens", func() {
			renewed := now.Add(cfg.SSODuration)
			db.queryRowFn = echoRow(storedSession("tok_sso", renewed, &workos))

			sess := &model.Session{ID: "tok_sso", SSOProvider: &workos}
			refresh := "refresh-2"
			tokenExpiry := now.Add(time.Hour)
			Expect(st.UpdateSSOTokens(ctx, sess, "access-2", &refresh, &tokenExpiry)).To(Succeed())

			args := db.queryRowArgs[0]
			Expect(*args[1].(*string)).To(Equal("access-2"))
			Expect(args[4].(pgtype.Timestamptz).Time).To(Equal(renewed))
		})
	})

	Describe("NeedsSSORefresh", func() {
		It("is false for password sessions", func() {
			expiry := now.Add(time.Minute)
			sess := &model.Session{SSOTokenExpiry: &expiry}
			Expect(st.NeedsSSORefresh(sess)).To(BeFalse())
		})

		It("is false without a recorded token expiry", func() {
			sess := &model.Session{SSOProvider: &workos}
			Expect(st.NeedsSSORefresh(sess)).To(BeFalse())
		})

		It("is true once the token expiry falls inside the lookahead", func() {
			expiry := now.Add(2 * time.Minute)
			sess := &model.Session{SSOProvider: &workos, SSOTokenExpiry: &expiry}
			Expect(st.NeedsSSORefresh(sess)).To(BeTrue())
		})

		It("is false while the token expiry is beyond the lookahead", func() {
			expiry := now.Add(time.Hour)
			sess := &model.Session{SSOProvider: &workos, SSOTokenExpiry: &expiry}
			Expect(st.NeedsSSORefresh(sess)).To(BeFalse())
		})
	})

	Describe("DeleteExpired", func() {
		It("sweeps with grace-aware cutoffs per login method", func() {
			db.execFn = func(string, []any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 3"), nil
			}

			deleted, err := st.DeleteExpired(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(3)))

			Expect(db.execArgs).To(HaveLen(1))
			passwordCutoff := db.execArgs[0][0].(pgtype.Timestamptz)
			ssoCutoff := db.execArgs[0][1].(pgtype.Timestamptz)
			Expect(passwordCutoff.Time).To(Equal(now))
			Expect(ssoCutoff.Time).To(Equal(now.Add(-cfg.SSOGracePeriod)))
		})
	})
})
