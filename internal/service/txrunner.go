package service

import (
	"context"

	"loomworks.app/api-server/core/config"
	"loomworks.app/api-server/core/db"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Tenants() store.TenantStore
	Users() store.UserStore
	Sessions() store.SessionStore
	Projects() store.ProjectStore
	Sows() store.SowStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db         *db.DB
	sessionCfg config.SessionConfig
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB, sessionCfg config.SessionConfig) TxRunner {
	return &dbTxRunner{db: db, sessionCfg: sessionCfg}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q, r.sessionCfg)
		return fn(stores)
	})
}
