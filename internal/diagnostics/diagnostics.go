// Package diagnostics probes and inventories the shared store for cmd/dbcheck.
package diagnostics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/models"
	"github.com/noah-isme/uav-academic-soa/pkg/export"
)

// RetryTimeout is the second, longer attempt made after a failed probe.
const RetryTimeout = 30 * time.Second

type store interface {
	Ping(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)
	ListTables(ctx context.Context) ([]string, error)
	CountRows(ctx context.Context, table string) (int64, error)
}

// Report is the outcome of Inspect.
type Report struct {
	Version string
	Tables  []models.TableCount
}

// Dataset renders the table counts for CSV export. Failed counts carry the error text.
func (r Report) Dataset() export.Dataset {
	data := export.Dataset{Headers: []string{"table", "rows"}}
	for _, t := range r.Tables {
		rows := strconv.FormatInt(t.Rows, 10)
		if t.Err != nil {
			rows = "error: " + t.Err.Error()
		}
		data.Append(t.Table, rows)
	}
	return data
}

// Checker runs the connection diagnostic.
type Checker struct {
	store  store
	logger *zap.Logger
}

// NewChecker constructs a Checker.
func NewChecker(s store, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{store: s, logger: logger}
}

// Probe pings the store once per timeout, stopping at the first success.
func (c *Checker) Probe(ctx context.Context, timeouts ...time.Duration) error {
	if len(timeouts) == 0 {
		return fmt.Errorf("probe needs at least one timeout")
	}
	var lastErr error
	for i, timeout := range timeouts {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		err := c.store.Ping(attemptCtx)
		cancel()
		if err == nil {
			c.logger.Info("database reachable", zap.Int("attempt", i+1), zap.Duration("timeout", timeout))
			return nil
		}
		c.logger.Warn("database probe failed", zap.Int("attempt", i+1), zap.Duration("timeout", timeout), zap.Error(err))
		lastErr = err
	}
	return lastErr
}

// Inspect reads the server version and counts the rows of every table. A failed
// count is recorded on its table and does not stop the inventory.
func (c *Checker) Inspect(ctx context.Context) (Report, error) {
	version, err := c.store.ServerVersion(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("server version: %w", err)
	}
	tables, err := c.store.ListTables(ctx)
	if err != nil {
		return Report{Version: version}, fmt.Errorf("list tables: %w", err)
	}

	report := Report{Version: version, Tables: make([]models.TableCount, 0, len(tables))}
	for _, table := range tables {
		rows, err := c.store.CountRows(ctx, table)
		report.Tables = append(report.Tables, models.TableCount{Table: table, Rows: rows, Err: err})
	}
	return report, nil
}
