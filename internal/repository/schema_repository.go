package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SchemaRepository answers diagnostic questions about the connected store.
type SchemaRepository struct {
	db *sqlx.DB
}

// NewSchemaRepository constructs a SchemaRepository.
func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// Ping verifies that a connection can be acquired and used.
func (r *SchemaRepository) Ping(ctx context.Context) error {
	return withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.PingContext(ctx)
	})
}

// ServerVersion reports the store's version string.
func (r *SchemaRepository) ServerVersion(ctx context.Context) (string, error) {
	var version string
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &version, `SELECT VERSION()`)
	})
	return version, err
}

// ListTables returns the user tables of the connected database.
func (r *SchemaRepository) ListTables(ctx context.Context) ([]string, error) {
	query := `SHOW TABLES`
	if r.db.DriverName() == "postgres" {
		query = `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_type = 'BASE TABLE' ORDER BY table_name`
	}
	tables := make([]string, 0)
	if err := selectAll(ctx, r.db, &tables, query); err != nil {
		return nil, err
	}
	return tables, nil
}

// CountRows counts the rows of table. The name is quoted, never interpolated raw.
func (r *SchemaRepository) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.quoteIdent(table))
	err := withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &count, query)
	})
	return count, err
}

func (r *SchemaRepository) quoteIdent(name string) string {
	if r.db.DriverName() == "postgres" {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
