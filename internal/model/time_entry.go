package model

import "time"

type TimeEntryStatus string

const (
	TimeEntryStatusPending  TimeEntryStatus = "pending"
	TimeEntryStatusApproved TimeEntryStatus = "approved"
	TimeEntryStatusRejected TimeEntryStatus = "rejected"
)

type TimeEntry struct {
	ID         int64           `json:"id"`
	TenantID   int64           `json:"tenant_id"`
	ProjectID  int64           `json:"project_id"`
	UserID     int64           `json:"user_id"`
	EntryDate  time.Time       `json:"entry_date"`
	Minutes    int32           `json:"minutes"`
	Notes      *string         `json:"notes,omitempty"`
	Status     TimeEntryStatus `json:"status"`
	ApprovedBy *int64          `json:"approved_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
