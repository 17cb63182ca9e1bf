// Package store persists quotes, authors and users with gorm.
//
// The DSN picks the driver: postgres:// URLs and key=value strings open
// PostgreSQL through pgx, everything else is treated as a SQLite path or
// file: URI and opened with the pure-Go glebarez driver.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/platform/config"
)

// Dialect names as reported by gorm.Dialector.Name.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// ErrEmptyDSN is returned by Open when no DSN is configured.
var ErrEmptyDSN = errors.New("store: empty dsn")

// sqlitePragmas are applied to every pooled connection by the driver.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// Open connects, applies pool settings and pings the database.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	dialect, err := DetectDialect(dsn)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger:         NewGormLogger(logger, cfg.LogLevel, cfg.SlowThreshold),
		TranslateError: true,
	}

	var db *gorm.DB
	switch dialect {
	case DialectPostgres:
		db, err = openPostgres(dsn, gormCfg)
	default:
		db, err = openSQLite(dsn, gormCfg)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store: sql handle: %w", err)
	}

	if dialect == DialectSQLite && isMemoryDSN(dsn) {
		// Each connection to :memory: is its own database.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// DetectDialect infers the driver from a DSN.
func DetectDialect(dsn string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, nil
	case strings.Contains(lower, "host="), strings.Contains(lower, "dbname="), strings.Contains(lower, "sslmode="):
		return DialectPostgres, nil
	case strings.HasPrefix(lower, "file:"),
		strings.HasPrefix(lower, "sqlite://"),
		strings.HasPrefix(lower, "sqlite3://"),
		!strings.Contains(lower, "://"):
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("store: unsupported dsn scheme: %s", redactDSN(dsn))
	}
}

func openPostgres(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	pgCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("store: parse dsn: %w", err)
	}

	if pgCfg.RuntimeParams == nil {
		pgCfg.RuntimeParams = map[string]string{}
	}
	pgCfg.RuntimeParams["timezone"] = "UTC"

	sqlDB := stdlib.OpenDB(*pgCfg)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}

	return db, nil
}

func openSQLite(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsn = SQLiteDSN(dsn)

	if err := ensureSQLiteDir(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}

	return db, nil
}

// SQLiteDSN normalizes sqlite:// URLs to file: URIs and appends the
// connection pragmas. File databases also get WAL journaling.
func SQLiteDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)

	lower := strings.ToLower(dsn)
	for _, scheme := range []string{"sqlite3://", "sqlite://"} {
		if strings.HasPrefix(lower, scheme) {
			dsn = "file:" + dsn[len(scheme):]
			break
		}
	}

	pragmas := sqlitePragmas
	if !isMemoryDSN(dsn) {
		pragmas = append(pragmas[:len(pragmas):len(pragmas)], "journal_mode(WAL)")
	}

	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		name, _, _ := strings.Cut(p, "(")
		if strings.Contains(strings.ToLower(dsn), "_pragma="+name) {
			continue
		}
		params = append(params, "_pragma="+p)
	}

	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + strings.Join(params, "&")
}

func isMemoryDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.Contains(lower, ":memory:") || strings.Contains(lower, "mode=memory")
}

func sqlitePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "//")

	if path == "" || isMemoryDSN(path) {
		return ""
	}

	return path
}

func ensureSQLiteDir(dsn string) error {
	path := sqlitePath(dsn)
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create sqlite dir: %w", err)
	}

	return nil
}

// redactDSN drops credentials from URL-style DSNs before they reach logs.
func redactDSN(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}

	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***@" + rest[at+1:]
	}

	return scheme + "://" + rest
}
