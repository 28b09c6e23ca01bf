package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Enqueue(ctx context.Context, event Event) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, event Event) error {
	attempt := event.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := map[string]any{
		"action":  event.Action,
		"attempt": attempt,
	}
	if event.TenantID != nil {
		fields["tenant_id"] = *event.TenantID
	}
	if event.ActorID != nil {
		fields["actor_id"] = *event.ActorID
	}
	if event.Entity != "" {
		fields["entity"] = event.Entity
	}
	if event.EntityID != "" {
		fields["entity_id"] = event.EntityID
	}
	if event.Detail != "" {
		fields["detail"] = event.Detail
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue audit event: %w", err)
	}

	p.logger.DebugContext(ctx, "enqueued audit event", "action", event.Action, "entity", event.Entity, "entity_id", event.EntityID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
