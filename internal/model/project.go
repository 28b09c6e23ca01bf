package model

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID          int64         `json:"id"`
	TenantID    int64         `json:"tenant_id"`
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	ClientName  string        `json:"client_name"`
	Status      ProjectStatus `json:"status"`
	Description *string       `json:"description,omitempty"`
	StartsOn    *time.Time    `json:"starts_on,omitempty"`
	EndsOn      *time.Time    `json:"ends_on,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
