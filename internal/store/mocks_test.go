package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"loomworks.app/api-server/core/db/sqlc"
)

// fakeDB satisfies sqlc.DBTX so stores can be exercised without a
// database. It records every statement and its arguments.
type fakeDB struct {
	queryRowFn func(sql string, args []any) pgx.Row
	execFn     func(sql string, args []any) (pgconn.CommandTag, error)

	queryRowSQL  []string
	queryRowArgs [][]any
	execSQL      []string
	execArgs     [][]any
}

var _ sqlc.DBTX = (*fakeDB)(nil)

func (f *fakeDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	if f.execFn != nil {
		return f.execFn(sql, args)
	}
	return pgconn.NewCommandTag("DELETE 0"), nil
}

func (f *fakeDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("fakeDB: Query not stubbed")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	f.queryRowSQL = append(f.queryRowSQL, sql)
	f.queryRowArgs = append(f.queryRowArgs, args)
	if f.queryRowFn != nil {
		return f.queryRowFn(sql, args)
	}
	return errRow{err: pgx.ErrNoRows}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// sessionRow scans a canned sqlc.Session in the column order the
// session queries return.
type sessionRow struct{ row sqlc.Session }

func (r sessionRow) Scan(dest ...any) error {
	*dest[0].(*string) = r.row.ID
	*dest[1].(*int64) = r.row.UserID
	*dest[2].(*string) = r.row.Email
	*dest[3].(*string) = r.row.Name
	*dest[4].(*string) = r.row.Role
	*dest[5].(**string) = r.row.PlatformRole
	*dest[6].(**int64) = r.row.ActiveTenantID
	*dest[7].(**string) = r.row.SsoProvider
	*dest[8].(**string) = r.row.SsoToken
	*dest[9].(**string) = r.row.SsoRefreshToken
	*dest[10].(*pgtype.Timestamptz) = r.row.SsoTokenExpiry
	*dest[11].(**string) = r.row.IpAddress
	*dest[12].(**string) = r.row.UserAgent
	*dest[13].(*pgtype.Timestamptz) = r.row.CreatedAt
	*dest[14].(*pgtype.Timestamptz) = r.row.LastActivity
	*dest[15].(*pgtype.Timestamptz) = r.row.ExpiresAt
	return nil
}
