package store

import (
	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/core/db/sqlc"
)

type Stores struct {
	queries    *sqlc.Queries
	sessionCfg config.SessionConfig
}

func NewStores(queries *sqlc.Queries, sessionCfg config.SessionConfig) *Stores {
	return &Stores{queries: queries, sessionCfg: sessionCfg}
}

func (s *Stores) Tenants() TenantStore {
	return newTenantStore(s.queries)
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries, s.sessionCfg)
}

func (s *Stores) Projects() ProjectStore {
	return newProjectStore(s.queries)
}

func (s *Stores) Sows() SowStore {
	return newSowStore(s.queries)
}

func (s *Stores) TimeEntries() TimeEntryStore {
	return newTimeEntryStore(s.queries)
}

func (s *Stores) Expenses() ExpenseStore {
	return newExpenseStore(s.queries)
}

func (s *Stores) Raidd() RaiddStore {
	return newRaiddStore(s.queries)
}

func (s *Stores) AuditLogs() AuditLogStore {
	return newAuditLogStore(s.queries)
}
