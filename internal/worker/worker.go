package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/common/logger"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/store"
)

// Mirrors the shape of service.StoreProvider - defined here to avoid
// import cycles.
type StoreProvider interface {
	AuditLogs() store.AuditLogStore
}

// Mirrors service.TxRunner - defined here to avoid import cycles.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type Config struct {
	MaxAttempts int
}

// Worker drains the audit stream into the audit_logs table.
type Worker struct {
	consumer *queue.RedisConsumer
	txRunner TxRunner
	cfg      Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
	stopOnce  sync.Once
}

func New(consumer *queue.RedisConsumer, txRunner TxRunner, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		txRunner:  txRunner,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "loomworks.worker.audit",
	})

	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "audit worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "audit worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

// Stop is safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.stoppedCh
	})
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"action", msg.Event.Action)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"action", msg.Event.Action)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// Exported so it can be reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	slog.DebugContext(ctx, "processing audit message",
		"message_id", msg.ID,
		"action", msg.Event.Action,
		"attempt", msg.Event.Attempt)

	entry := auditLogFromEvent(msg.Event)

	txErr := w.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.AuditLogs().Create(ctx, entry); err != nil {
			return fmt.Errorf("inserting audit log: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("transaction failed: %w", txErr)
	}

	// Insert committed - ACK the message.
	if err := w.consumer.Ack(ctx, msg); err != nil {
		// A reclaimed redelivery would insert a second row for the same
		// event, which the audit trail tolerates.
		slog.WarnContext(ctx, "failed to ACK message",
			"error", err,
			"message_id", msg.ID)
	}

	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Event.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"action", msg.Event.Action,
			"attempts", msg.Event.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"action", msg.Event.Action,
		"attempt", msg.Event.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}

func auditLogFromEvent(event queue.Event) *model.AuditLog {
	entry := &model.AuditLog{
		ID:        id.New(),
		TenantID:  event.TenantID,
		ActorID:   event.ActorID,
		Action:    event.Action,
		CreatedAt: time.Now(),
	}
	if event.Entity != "" {
		entity := event.Entity
		entry.Entity = &entity
	}
	if event.EntityID != "" {
		entityID := event.EntityID
		entry.EntityID = &entityID
	}
	if event.Detail != "" {
		detail := event.Detail
		entry.Detail = &detail
	}
	return entry
}
