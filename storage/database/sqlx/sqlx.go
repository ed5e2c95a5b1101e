// Package sqlxrepos implements the domain repositories over database/sql via sqlx.
// Queries are written with `?` placeholders and rebound for the connected driver,
// so the same statements run on postgres and sqlite.
package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mrsmranau/ehomeroom/core"
)

type repository struct {
	db core.DB
}

// inTx runs fn in a transaction, committed when fn returns nil.
func (repo repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "committing transaction")
}

// trapNoRowsErr maps "no rows" to the domain's not found error.
func trapNoRowsErr(err error, notFound error, msg string) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrap(err, msg)
}

// checkAffected returns notFound when res affected no row.
func checkAffected(res sql.Result, notFound error, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, msg)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	switch e := errors.Cause(err).(type) {
	case *pq.Error:
		return e.Code == "23505"
	case *sqlite.Error:
		return e.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || e.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// nonNil turns a nil slice into an empty one so lists encode as [].
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
