package queue

// Actions recorded on the audit stream. Kept as plain strings on the
// wire so old consumers tolerate new actions.
const (
	ActionLogin           = "auth.login"
	ActionLogout          = "auth.logout"
	ActionSessionsRevoked = "auth.sessions_revoked"
	ActionUserCreated     = "user.created"
	ActionUserRoleChanged = "user.role_changed"
	ActionUserDeactivated = "user.deactivated"
	ActionTenantCreated   = "tenant.created"
	ActionTenantDeleted   = "tenant.deleted"
	ActionProjectCreated  = "project.created"
	ActionProjectDeleted  = "project.deleted"
	ActionSowStatus       = "sow.status_changed"
	ActionTimeDecided     = "time_entry.decided"
	ActionExpenseDecided  = "expense.decided"
	ActionRaiddChanged    = "raidd.changed"
)

// Event is one audit record on its way to the worker.
type Event struct {
	Action   string
	TenantID *int64
	ActorID  *int64
	Entity   string
	EntityID string
	Detail   string
	Attempt  int
}
