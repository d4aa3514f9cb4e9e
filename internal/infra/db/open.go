package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	pkgconfig "conduit-backend/internal/pkg/config"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Open creates and configures a new PostgreSQL connection pool.
// It reads DATABASE_URL from environment and applies connection pool settings.
func Open() *sql.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal(err)
	}

	configurePool(db)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	slog.Info("database connection established successfully")
	return db
}

// OpenSQLite creates a connection pool backed by an embedded SQLite database.
// This is the secondary backend, used for lightweight deployments and local
// development.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}

	configurePool(db)
	return db, nil
}

// configurePool applies env-tuned pool settings to db.
func configurePool(db *sql.DB) {
	cfg := getConnectionConfigFromEnv()
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))
}

var configMetrics = pkgconfig.NewConfigMetrics("db")

// getConnectionConfigFromEnv reads connection pool configuration from environment variables.
// Invalid values fall back to defaults with a logged warning.
func getConnectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()

	positiveInt := func(v int) error { return pkgconfig.ValidateIntRange(v, 1, 10000) }
	lifetimeRange := func(d time.Duration) error { return pkgconfig.ValidateDuration(d, time.Second, 24*time.Hour) }

	maxOpen := pkgconfig.LoadEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns, positiveInt)
	recordResult("max_open_conns", maxOpen)
	cfg.MaxOpenConns = maxOpen.Value.(int)

	maxIdle := pkgconfig.LoadEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns, positiveInt)
	recordResult("max_idle_conns", maxIdle)
	cfg.MaxIdleConns = maxIdle.Value.(int)

	lifetime := pkgconfig.LoadEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime, lifetimeRange)
	recordResult("conn_max_lifetime", lifetime)
	cfg.ConnMaxLifetime = lifetime.Value.(time.Duration)

	idleTime := pkgconfig.LoadEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime, pkgconfig.ValidatePositiveDuration)
	recordResult("conn_max_idle_time", idleTime)
	cfg.ConnMaxIdleTime = idleTime.Value.(time.Duration)

	configMetrics.RecordLoadTimestamp()
	configMetrics.SetFallbackActive("pool",
		maxOpen.FallbackApplied || maxIdle.FallbackApplied ||
			lifetime.FallbackApplied || idleTime.FallbackApplied)
	return cfg
}

func recordResult(field string, result pkgconfig.ConfigLoadResult) {
	for _, warning := range result.Warnings {
		slog.Warn("database configuration fallback", slog.String("detail", warning))
	}
	if result.FallbackApplied {
		configMetrics.RecordValidationError(field)
		configMetrics.RecordFallback(field, "default")
	}
}
