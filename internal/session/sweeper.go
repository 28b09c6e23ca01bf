package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"loomworks.app/api-server/internal/store"
)

// Sweeper periodically deletes expired session rows from the durable
// store. The read path already deletes expired rows it encounters; the
// sweeper catches sessions nobody asks for again.
type Sweeper struct {
	sessions store.SessionStore
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewSweeper(sessions store.SessionStore, interval time.Duration) *Sweeper {
	return &Sweeper{
		sessions:  sessions,
		interval:  interval,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Start launches the sweep loop. Safe to call once; subsequent calls
// are no-ops.
func (s *Sweeper) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.run(ctx)
	})
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.stoppedCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "session sweep loop started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			slog.InfoContext(ctx, "session sweep loop stopping")
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	deleted, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "session sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.InfoContext(ctx, "expired sessions swept", "deleted", deleted)
	}
}

// Stop signals the sweep loop to stop and waits for it to exit.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.stoppedCh
	})
}
