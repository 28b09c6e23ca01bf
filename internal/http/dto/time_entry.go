package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type SubmitTimeEntryRequest struct {
	ProjectID int64     `json:"project_id,string" binding:"required"`
	EntryDate time.Time `json:"entry_date" binding:"required"`
	Minutes   int32     `json:"minutes" binding:"required,gt=0,lte=1440"`
	Notes     *string   `json:"notes,omitempty" binding:"omitempty,max=2048"`
}

type UpdateTimeEntryRequest struct {
	EntryDate time.Time `json:"entry_date" binding:"required"`
	Minutes   int32     `json:"minutes" binding:"required,gt=0,lte=1440"`
	Notes     *string   `json:"notes,omitempty" binding:"omitempty,max=2048"`
}

type DecideRequest struct {
	Approve bool `json:"approve"`
}

type TimeEntryResponse struct {
	ID         int64     `json:"id,string"`
	ProjectID  int64     `json:"project_id,string"`
	UserID     int64     `json:"user_id,string"`
	EntryDate  time.Time `json:"entry_date"`
	Minutes    int32     `json:"minutes"`
	Notes      *string   `json:"notes,omitempty"`
	Status     string    `json:"status"`
	ApprovedBy *int64    `json:"approved_by,string,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToTimeEntryResponse(entry *model.TimeEntry) *TimeEntryResponse {
	return &TimeEntryResponse{
		ID:         entry.ID,
		ProjectID:  entry.ProjectID,
		UserID:     entry.UserID,
		EntryDate:  entry.EntryDate,
		Minutes:    entry.Minutes,
		Notes:      entry.Notes,
		Status:     string(entry.Status),
		ApprovedBy: entry.ApprovedBy,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}
