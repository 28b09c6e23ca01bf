package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type CreateRaiddRequest struct {
	Kind     string     `json:"kind" binding:"required,oneof=risk assumption issue dependency decision"`
	Title    string     `json:"title" binding:"required,min=1,max=255"`
	Detail   *string    `json:"detail,omitempty" binding:"omitempty,max=4096"`
	Severity string     `json:"severity" binding:"omitempty,oneof=low medium high critical"`
	OwnerID  *int64     `json:"owner_id,string,omitempty"`
	DueOn    *time.Time `json:"due_on,omitempty"`
}

type UpdateRaiddRequest struct {
	Title    string     `json:"title" binding:"required,min=1,max=255"`
	Detail   *string    `json:"detail,omitempty" binding:"omitempty,max=4096"`
	Severity string     `json:"severity" binding:"required,oneof=low medium high critical"`
	Status   string     `json:"status" binding:"required,oneof=open mitigated closed"`
	OwnerID  *int64     `json:"owner_id,string,omitempty"`
	DueOn    *time.Time `json:"due_on,omitempty"`
}

type RaiddResponse struct {
	ID        int64      `json:"id,string"`
	ProjectID int64      `json:"project_id,string"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Detail    *string    `json:"detail,omitempty"`
	Severity  string     `json:"severity"`
	Status    string     `json:"status"`
	OwnerID   *int64     `json:"owner_id,string,omitempty"`
	DueOn     *time.Time `json:"due_on,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToRaiddResponse(entry *model.RaiddEntry) *RaiddResponse {
	return &RaiddResponse{
		ID:        entry.ID,
		ProjectID: entry.ProjectID,
		Kind:      string(entry.Kind),
		Title:     entry.Title,
		Detail:    entry.Detail,
		Severity:  string(entry.Severity),
		Status:    string(entry.Status),
		OwnerID:   entry.OwnerID,
		DueOn:     entry.DueOn,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
