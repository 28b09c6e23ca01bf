package model

import "time"

type SowStatus string

const (
	SowStatusDraft   SowStatus = "draft"
	SowStatusSent    SowStatus = "sent"
	SowStatusSigned  SowStatus = "signed"
	SowStatusExpired SowStatus = "expired"
)

// Sow is a statement of work attached to a project.
type Sow struct {
	ID         int64      `json:"id"`
	ProjectID  int64      `json:"project_id"`
	Title      string     `json:"title"`
	ValueCents int64      `json:"value_cents"`
	Currency   string     `json:"currency"`
	Status     SowStatus  `json:"status"`
	SignedAt   *time.Time `json:"signed_at,omitempty"`
	StartsOn   *time.Time `json:"starts_on,omitempty"`
	EndsOn     *time.Time `json:"ends_on,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
