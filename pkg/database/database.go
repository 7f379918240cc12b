package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/noah-isme/uav-academic-soa/pkg/config"
	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

// Driver names registered with database/sql.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// DriverFor maps a connection-string scheme onto a registered driver.
func DriverFor(scheme string) (string, error) {
	switch scheme {
	case "mysql":
		return DriverMySQL, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	default:
		return "", appErrors.Clone(appErrors.ErrInvalidConfiguration, fmt.Sprintf("unsupported database scheme %q, %s", scheme, config.ConnectionFormatHint))
	}
}

// DSN renders the driver-specific data source name.
func DSN(cfg config.DatabaseConfig) (string, string, error) {
	driver, err := DriverFor(cfg.Connection.Scheme)
	if err != nil {
		return "", "", err
	}
	conn := cfg.Connection
	switch driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = conn.User
		mc.Passwd = conn.Password
		mc.Net = "tcp"
		mc.Addr = conn.Addr()
		mc.DBName = conn.Database
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		if cfg.ConnectTimeout > 0 {
			mc.Timeout = cfg.ConnectTimeout
		}
		return driver, mc.FormatDSN(), nil
	default:
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		pairs := []string{
			"host=" + quoteValue(conn.Host),
			fmt.Sprintf("port=%d", conn.Port),
			"user=" + quoteValue(conn.User),
			"password=" + quoteValue(conn.Password),
			"dbname=" + quoteValue(conn.Database),
			"sslmode=" + quoteValue(sslMode),
		}
		if cfg.ConnectTimeout > 0 {
			pairs = append(pairs, fmt.Sprintf("connect_timeout=%d", timeoutSeconds(cfg.ConnectTimeout)))
		}
		dsn := strings.Join(pairs, " ")
		return driver, dsn, nil
	}
}

// quoteValue renders v as a single-quoted lib/pq connection value.
func quoteValue(v string) string {
	return "'" + pqValueEscaper.Replace(v) + "'"
}

var pqValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// timeoutSeconds rounds d up to whole seconds; lib/pq reads 0 as no timeout.
func timeoutSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Open returns a handle for the configured store. Connections are acquired per
// operation; with MaxIdleConns at zero every released connection is closed.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	driver, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}
