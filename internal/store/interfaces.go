package store

import (
	"context"
	"errors"
	"time"

	"loomworks.app/api-server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// TenantStore defines the contract for tenant data access
type TenantStore interface {
	GetByID(ctx context.Context, id int64) (*model.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*model.Tenant, error)
	Create(ctx context.Context, tenant *model.Tenant) error
	Update(ctx context.Context, tenant *model.Tenant) error
	Delete(ctx context.Context, id int64) error // soft delete
	List(ctx context.Context) ([]model.Tenant, error)
}

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	UpdateRole(ctx context.Context, id int64, role model.Role) (*model.User, error)
	SetActive(ctx context.Context, id int64, active bool) (*model.User, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]model.User, error)
}

// SessionStore defines the contract for durable session data access.
// The store owns session lifetime policy: sliding expiry on touch, the
// SSO grace window on reads, and expiry-aware sweeping.
type SessionStore interface {
	// Create persists the session and stamps its expiry from the
	// configured duration for its login method.
	Create(ctx context.Context, session *model.Session) error
	// Get returns the session if it is still usable. Password sessions
	// past expiry and SSO sessions past expiry plus the grace window are
	// deleted on read and reported as ErrNotFound. An SSO session inside
	// the grace window is returned so the caller can refresh it.
	Get(ctx context.Context, id string) (*model.Session, error)
	// Touch slides the session's expiry forward and records activity.
	Touch(ctx context.Context, session *model.Session) error
	// UpdateSSOTokens stores refreshed provider tokens and extends the
	// session's expiry.
	UpdateSSOTokens(ctx context.Context, session *model.Session, accessToken string, refreshToken *string, tokenExpiry *time.Time) error
	// NeedsSSORefresh reports whether the session's provider token is
	// expired or about to expire.
	NeedsSSORefresh(session *model.Session) bool
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
	// DeleteExpired removes sessions that are no longer usable, keeping
	// SSO sessions that are still inside their grace window.
	DeleteExpired(ctx context.Context) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Session, error)
}

// ProjectStore defines the contract for project data access
type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	UpdateStatus(ctx context.Context, id int64, status model.ProjectStatus) (*model.Project, error)
	Delete(ctx context.Context, id int64) error // soft delete
	ListByTenant(ctx context.Context, tenantID int64) ([]model.Project, error)
}

// SowStore defines the contract for statement-of-work data access
type SowStore interface {
	GetByID(ctx context.Context, id int64) (*model.Sow, error)
	Create(ctx context.Context, sow *model.Sow) error
	Update(ctx context.Context, sow *model.Sow) error
	UpdateStatus(ctx context.Context, id int64, status model.SowStatus, signedAt *time.Time) (*model.Sow, error)
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64) ([]model.Sow, error)
}

// TimeEntryStore defines the contract for time entry data access
type TimeEntryStore interface {
	GetByID(ctx context.Context, id int64) (*model.TimeEntry, error)
	Create(ctx context.Context, entry *model.TimeEntry) error
	Update(ctx context.Context, entry *model.TimeEntry) error
	SetStatus(ctx context.Context, id int64, status model.TimeEntryStatus, approvedBy *int64) (*model.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64) ([]model.TimeEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]model.TimeEntry, error)
}

// ExpenseStore defines the contract for expense data access
type ExpenseStore interface {
	GetByID(ctx context.Context, id int64) (*model.Expense, error)
	Create(ctx context.Context, expense *model.Expense) error
	SetStatus(ctx context.Context, id int64, status model.ExpenseStatus, approverID *int64) (*model.Expense, error)
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64) ([]model.Expense, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Expense, error)
}

// RaiddStore defines the contract for project log data access
type RaiddStore interface {
	GetByID(ctx context.Context, id int64) (*model.RaiddEntry, error)
	Create(ctx context.Context, entry *model.RaiddEntry) error
	Update(ctx context.Context, entry *model.RaiddEntry) error
	Delete(ctx context.Context, id int64) error
	ListByProject(ctx context.Context, projectID int64) ([]model.RaiddEntry, error)
	ListByProjectAndKind(ctx context.Context, projectID int64, kind model.RaiddKind) ([]model.RaiddEntry, error)
}

// AuditLogStore defines the contract for audit trail data access
type AuditLogStore interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	ListByTenant(ctx context.Context, tenantID int64, limit int32) ([]model.AuditLog, error)
}
