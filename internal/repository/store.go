package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Driver errors are returned unwrapped so callers can surface the store message verbatim.

// withConn acquires a dedicated connection for one operation and releases it on every path.
func withConn(ctx context.Context, db *sqlx.DB, fn func(conn *sqlx.Conn) error) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

// selectAll runs one read statement written with '?' placeholders.
func selectAll(ctx context.Context, db *sqlx.DB, dest interface{}, query string, args ...interface{}) error {
	return withConn(ctx, db, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, dest, conn.Rebind(query), args...)
	})
}

// insertReturningID runs one INSERT in its own transaction, commits, and reports the new id.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (int64, error) {
	var id int64
	err := withConn(ctx, db, func(conn *sqlx.Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback() //nolint:errcheck

		if supportsReturning(db.DriverName()) {
			if err := tx.QueryRowxContext(ctx, tx.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
				return err
			}
		} else {
			res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
			if err != nil {
				return err
			}
			if id, err = res.LastInsertId(); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// lib/pq has no LastInsertId.
func supportsReturning(driver string) bool {
	return driver == "postgres" || driver == "pgx"
}
