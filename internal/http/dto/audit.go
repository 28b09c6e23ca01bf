package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type AuditLogResponse struct {
	ID        int64     `json:"id,string"`
	ActorID   *int64    `json:"actor_id,string,omitempty"`
	Action    string    `json:"action"`
	Entity    *string   `json:"entity,omitempty"`
	EntityID  *string   `json:"entity_id,omitempty"`
	Detail    *string   `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToAuditLogResponse(entry model.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        entry.ID,
		ActorID:   entry.ActorID,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt,
	}
}
