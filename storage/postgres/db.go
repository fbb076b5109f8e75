package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/poiesic/prospector/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	uniqueViolation = "23505"
	vectorExtension = "CREATE EXTENSION IF NOT EXISTS vector"
)

type options struct {
	autoMigrate bool
	logger      *slog.Logger
	gormLog     gormLogger.Interface
	dryRun      bool
}

// Option configures Open.
type Option func(*options)

// WithAutoMigrate creates or alters the tables on open.
func WithAutoMigrate(enabled bool) Option {
	return func(o *options) { o.autoMigrate = enabled }
}

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithGormLogger replaces gorm's own SQL logger.
func WithGormLogger(l gormLogger.Interface) Option {
	return func(o *options) { o.gormLog = l }
}

// withDryRun opens a session that renders SQL without executing it.
func withDryRun() Option {
	return func(o *options) { o.dryRun = true }
}

// DB owns the gorm handle shared by every postgres store.
type DB struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to PostgreSQL using dsn.
func Open(dsn string, opts ...Option) (*DB, error) {
	o := options{
		logger:  slog.Default(),
		gormLog: gormLogger.Default.LogMode(gormLogger.Warn),
	}
	for _, opt := range opts {
		opt(&o)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               o.gormLog,
		TranslateError:       true,
		DryRun:               o.dryRun,
		DisableAutomaticPing: o.dryRun,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if !o.dryRun {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	d := &DB{db: gdb, logger: o.logger.With("component", "postgres")}
	if o.autoMigrate {
		if err := d.migrate(); err != nil {
			d.Close()
			return nil, err
		}
	}
	return d, nil
}

func (d *DB) migrate() error {
	if err := d.db.Exec(vectorExtension).Error; err != nil {
		return fmt.Errorf("failed to enable pgvector: %w", err)
	}
	if err := d.db.AutoMigrate(&personRow{}, &companyRow{}, &vectorRow{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	d.logger.Info("schema migrated")
	return nil
}

// Close releases the connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *DB) with(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

// mapError converts driver errors to the storage sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", storage.ErrDuplicateKey, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.TrimSpace(pgErr.Code) == uniqueViolation {
		return fmt.Errorf("%w: %v", storage.ErrDuplicateKey, err)
	}
	return err
}
