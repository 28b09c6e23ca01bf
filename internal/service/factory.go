package service

import (
	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	cache     *session.Cache
	workOSCfg config.WorkOSConfig
	auditor   *Auditor
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	cache *session.Cache,
	workOSCfg config.WorkOSConfig,
	producer queue.Producer,
) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		cache:     cache,
		workOSCfg: workOSCfg,
		auditor:   NewAuditor(producer),
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.cache, s.workOSCfg, s.auditor)
}

func (s *Services) Tenants() TenantService {
	return NewTenantService(s.stores.Tenants(), s.auditor)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users(), s.txRunner, s.cache, s.auditor)
}

func (s *Services) Projects() ProjectService {
	return NewProjectService(s.stores.Projects(), s.auditor)
}

func (s *Services) Sows() SowService {
	return NewSowService(s.stores.Sows(), s.stores.Projects(), s.auditor)
}

func (s *Services) TimeEntries() TimeEntryService {
	return NewTimeEntryService(s.stores.TimeEntries(), s.stores.Projects(), s.auditor)
}

func (s *Services) Expenses() ExpenseService {
	return NewExpenseService(s.stores.Expenses(), s.stores.Projects(), s.auditor)
}

func (s *Services) Raidd() RaiddService {
	return NewRaiddService(s.stores.Raidd(), s.stores.Projects(), s.auditor)
}

func (s *Services) Audit() AuditService {
	return NewAuditService(s.stores.AuditLogs())
}
