package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/store"
)

func testSessionCfg() config.SessionConfig {
	return config.SessionConfig{
		PasswordDuration:    24 * time.Hour,
		SSODuration:         7 * 24 * time.Hour,
		SSOGracePeriod:      time.Hour,
		SSORefreshLookahead: 5 * time.Minute,
		CacheTTL:            time.Minute,
		CacheHighWater:      10,
		CacheLowWater:       8,
		CachePruneInterval:  2 * time.Minute,
		StoreSweepInterval:  10 * time.Minute,
	}
}

func testSession(id string, userID int64) *model.Session {
	return &model.Session{
		ID:        id,
		UserID:    userID,
		Email:     "user@example.com",
		Name:      "Test User",
		Role:      model.RoleConsultant,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

var _ = Describe("Cache", func() {
	var (
		ctx       context.Context
		mockStore *mockSessionStore
		cache     *Cache
		clock     time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockStore = &mockSessionStore{}
		cache = NewCache(mockStore, testSessionCfg())
		clock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		cache.now = func() time.Time { return clock }
	})

	Describe("Get", func() {
		It("reads through to the store on miss and caches the result", func() {
			sess := testSession("tok-1", 100)
			mockStore.getFn = func(_ context.Context, id string) (*model.Session, error) {
				Expect(id).To(Equal("tok-1"))
				return sess, nil
			}

			got, err := cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.UserID).To(Equal(int64(100)))
			Expect(mockStore.getCalls).To(Equal(1))

			// Second read inside the TTL is served from the cache.
			got, err = cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.UserID).To(Equal(int64(100)))
			Expect(mockStore.getCalls).To(Equal(1))
		})

		It("evicts a stale entry and consults the store again", func() {
			sess := testSession("tok-1", 100)
			mockStore.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return sess, nil
			}

			_, err := cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())

			clock = clock.Add(61 * time.Second)

			_, err = cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(mockStore.getCalls).To(Equal(2))
		})

		It("never returns a session the store reports absent", func() {
			sess := testSession("tok-1", 100)
			mockStore.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return sess, nil
			}
			_, err := cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())

			mockStore.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return nil, store.ErrNotFound
			}
			clock = clock.Add(61 * time.Second)

			got, err := cache.Get(ctx, "tok-1")
			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(got).To(BeNil())
		})

		It("propagates store read errors without panicking", func() {
			mockStore.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return nil, errors.New("connection refused")
			}

			got, err := cache.Get(ctx, "tok-1")
			Expect(err).To(HaveOccurred())
			Expect(got).To(BeNil())
			Expect(cache.Len()).To(BeZero())
		})

		It("returns an independent copy of the cached session", func() {
			mockStore.getFn = func(_ context.Context, _ string) (*model.Session, error) {
				return testSession("tok-1", 100), nil
			}

			first, err := cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())
			first.Email = "mutated@example.com"

			second, err := cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Email).To(Equal("user@example.com"))
		})
	})

	Describe("Put", func() {
		It("triggers a prune pass above the high-water mark", func() {
			for i := 0; i < 11; i++ {
				id := fmt.Sprintf("tok-%d", i)
				clock = clock.Add(time.Second)
				cache.Put(id, testSession(id, int64(i)))
			}
			Expect(cache.Len()).To(Equal(testSessionCfg().CacheLowWater))
		})
	})

	Describe("Touch", func() {
		It("writes through to the store and refreshes the cached copy", func() {
			sess := testSession("tok-1", 100)
			mockStore.touchFn = func(_ context.Context, s *model.Session) error {
				s.ExpiresAt = s.ExpiresAt.Add(time.Hour)
				return nil
			}

			Expect(cache.Touch(ctx, sess)).To(Succeed())
			Expect(mockStore.touchCalls).To(Equal(1))

			got, err := cache.Get(ctx, "tok-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ExpiresAt).To(Equal(sess.ExpiresAt))
			Expect(mockStore.getCalls).To(BeZero())
		})

		It("invalidates the cached entry when the store touch fails", func() {
			sess := testSession("tok-1", 100)
			cache.Put("tok-1", sess)

			mockStore.touchFn = func(_ context.Context, _ *model.Session) error {
				return errors.New("write failed")
			}
			Expect(cache.Touch(ctx, sess)).NotTo(Succeed())
			Expect(cache.Len()).To(BeZero())
		})
	})

	Describe("Invalidate", func() {
		It("drops a single entry", func() {
			cache.Put("tok-1", testSession("tok-1", 100))
			cache.Put("tok-2", testSession("tok-2", 200))

			cache.Invalidate("tok-1")
			Expect(cache.Len()).To(Equal(1))
		})

		It("drops every session belonging to a user", func() {
			cache.Put("tok-1", testSession("tok-1", 100))
			cache.Put("tok-2", testSession("tok-2", 100))
			cache.Put("tok-3", testSession("tok-3", 200))

			cache.InvalidateUser(100)
			Expect(cache.Len()).To(Equal(1))

			_, err := cache.Get(ctx, "tok-1")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("Prune", func() {
		It("drops expired entries first", func() {
			cache.Put("old-1", testSession("old-1", 1))
			cache.Put("old-2", testSession("old-2", 2))
			clock = clock.Add(61 * time.Second)
			cache.Put("fresh", testSession("fresh", 3))

			cache.Prune()
			Expect(cache.Len()).To(Equal(1))
		})

		It("evicts oldest-first down to the low-water mark", func() {
			// 12 fresh entries, staggered by a second each; low water is 8.
			for i := 0; i < 12; i++ {
				clock = clock.Add(time.Second)
				id := fmt.Sprintf("tok-%02d", i)
				cache.entries[id] = cacheEntry{session: *testSession(id, int64(i)), cachedAt: clock}
			}

			cache.Prune()
			Expect(cache.Len()).To(Equal(8))

			// The four oldest are gone, the newest survive.
			for i := 0; i < 4; i++ {
				_, ok := cache.entries[fmt.Sprintf("tok-%02d", i)]
				Expect(ok).To(BeFalse())
			}
			for i := 4; i < 12; i++ {
				_, ok := cache.entries[fmt.Sprintf("tok-%02d", i)]
				Expect(ok).To(BeTrue())
			}
		})

		It("is a no-op at or below the low-water mark", func() {
			cache.Put("tok-1", testSession("tok-1", 1))
			cache.Prune()
			Expect(cache.Len()).To(Equal(1))
		})
	})
})

var _ = Describe("NewToken", func() {
	It("produces distinct URL-safe tokens", func() {
		a, err := NewToken()
		Expect(err).NotTo(HaveOccurred())
		b, err := NewToken()
		Expect(err).NotTo(HaveOccurred())

		Expect(a).NotTo(Equal(b))
		Expect(len(a)).To(Equal(43)) // 32 bytes, base64 without padding
		Expect(a).NotTo(ContainSubstring("+"))
		Expect(a).NotTo(ContainSubstring("/"))
		Expect(a).NotTo(ContainSubstring("="))
	})
})
