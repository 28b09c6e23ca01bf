package service

import (
	"context"
	"log/slog"

	"loomworks.app/api-server/internal/queue"
)

// Auditor publishes audit events to the stream. Emission is best
// effort: a broken stream must never fail the operation being audited.
type Auditor struct {
	producer queue.Producer
}

func NewAuditor(producer queue.Producer) *Auditor {
	return &Auditor{producer: producer}
}

func (a *Auditor) Emit(ctx context.Context, event queue.Event) {
	if a == nil || a.producer == nil {
		return
	}
	if err := a.producer.Enqueue(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to emit audit event",
			"error", err,
			"action", event.Action,
			"entity", event.Entity,
			"entity_id", event.EntityID)
	}
}
