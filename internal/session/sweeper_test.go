package session

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sweeper", func() {
	var (
		ctx       context.Context
		mockStore *mockSessionStore
		sweeper   *Sweeper
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockStore = &mockSessionStore{}
		sweeper = NewSweeper(mockStore, 10*time.Minute)
	})

	It("deletes expired sessions on a sweep pass", func() {
		var called bool
		mockStore.deleteExpiredFn = func(_ context.Context) (int64, error) {
			called = true
			return 3, nil
		}

		sweeper.sweepOnce(ctx)
		Expect(called).To(BeTrue())
	})

	It("survives a store failure and keeps sweeping", func() {
		mockStore.deleteExpiredFn = func(_ context.Context) (int64, error) {
			return 0, errors.New("connection refused")
		}

		Expect(func() { sweeper.sweepOnce(ctx) }).NotTo(Panic())
	})

	It("stops cleanly after start", func() {
		sweeper.Start(ctx)
		sweeper.Stop()
		// Stop is idempotent.
		sweeper.Stop()
	})
})
