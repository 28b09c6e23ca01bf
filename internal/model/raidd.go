package model

import "time"

// RaiddKind classifies a project log entry: risk, assumption,
// issue, dependency, or decision.
type RaiddKind string

const (
	RaiddKindRisk       RaiddKind = "risk"
	RaiddKindAssumption RaiddKind = "assumption"
	RaiddKindIssue      RaiddKind = "issue"
	RaiddKindDependency RaiddKind = "dependency"
	RaiddKindDecision   RaiddKind = "decision"
)

type RaiddSeverity string

const (
	RaiddSeverityLow      RaiddSeverity = "low"
	RaiddSeverityMedium   RaiddSeverity = "medium"
	RaiddSeverityHigh     RaiddSeverity = "high"
	RaiddSeverityCritical RaiddSeverity = "critical"
)

type RaiddStatus string

const (
	RaiddStatusOpen      RaiddStatus = "open"
	RaiddStatusMitigated RaiddStatus = "mitigated"
	RaiddStatusClosed    RaiddStatus = "closed"
)

type RaiddEntry struct {
	ID        int64         `json:"id"`
	TenantID  int64         `json:"tenant_id"`
	ProjectID int64         `json:"project_id"`
	Kind      RaiddKind     `json:"kind"`
	Title     string        `json:"title"`
	Detail    *string       `json:"detail,omitempty"`
	Severity  RaiddSeverity `json:"severity"`
	Status    RaiddStatus   `json:"status"`
	OwnerID   *int64        `json:"owner_id,omitempty"`
	DueOn     *time.Time    `json:"due_on,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (k RaiddKind) Valid() bool {
	switch k {
	case RaiddKindRisk, RaiddKindAssumption, RaiddKindIssue, RaiddKindDependency, RaiddKindDecision:
		return true
	}
	return false
}
