// Package repo implements the data persistence layer for companies,
// invoices, industries and idempotency records, backed by GORM. This file
// contains connection bootstrapping for SQLite (pure Go driver) and
// Postgres, plus schema migrations.
package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-biztime-backend/internal/config"
	"github.com/tbourn/go-biztime-backend/internal/domain"
)

// sqlitePragmas are applied by the driver on every new pooled connection.
// foreign_keys must be per connection or FK checks silently stop on the
// second connection the pool opens.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// Open connects to the store selected by cfg.Driver, tunes the pool and
// registers the OpenTelemetry tracing plugin.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return OpenSQLite(cfg.Path, cfg.MaxOpenConns)
	case config.DriverPostgres:
		return OpenPostgres(cfg.URL, cfg.MaxOpenConns)
	default:
		return nil, fmt.Errorf("repo: unsupported driver %q", cfg.Driver)
	}
}

// OpenSQLite opens (or creates) a SQLite database file.
func OpenSQLite(path string, maxOpen int) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}
	return open(sqlite.Open(sqliteDSN(path)), maxOpen)
}

// OpenPostgres connects to a Postgres server using a URL or keyword DSN.
func OpenPostgres(dsn string, maxOpen int) (*gorm.DB, error) {
	return open(postgres.Open(dsn), maxOpen)
}

func open(dialector gorm.Dialector, maxOpen int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	if maxOpen < 1 {
		maxOpen = 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	var b strings.Builder
	b.WriteString(path)
	for _, p := range sqlitePragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

// AutoMigrate creates or updates the schema. Companies are migrated first
// so the invoice and industry foreign keys have a target.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Company{},
		&domain.Invoice{},
		&domain.Industry{},
		&domain.Idempotency{},
	)
}

// Ping checks that the store is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
