package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// BaselineSchema returns the embedded four-table schema for the given driver.
func BaselineSchema(driver string) (string, error) {
	var name string
	switch driver {
	case DriverMySQL:
		name = "schema/mysql.sql"
	case DriverPostgres:
		name = "schema/postgres.sql"
	default:
		return "", fmt.Errorf("no baseline schema for driver %q", driver)
	}
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(raw), nil
}

// SplitStatements splits a plain SQL script on ';' and drops empty statements.
// Scripts containing ';' inside literals or routine bodies are not supported.
func SplitStatements(script string) []string {
	parts := strings.Split(script, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// ApplySchema executes every statement of script, in order, on one connection and
// reports how many ran. It stops at the first failing statement.
func ApplySchema(ctx context.Context, db *sqlx.DB, script string) (int, error) {
	statements := SplitStatements(script)
	if len(statements) == 0 {
		return 0, fmt.Errorf("schema script has no statements")
	}

	conn, err := db.Connx(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	for i, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return i, fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return len(statements), nil
}
