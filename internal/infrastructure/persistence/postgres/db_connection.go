// Package postgres implements the PostgreSQL-backed repositories and the
// database connection lifecycle. Repositories run through gorm; liveness
// checks go through a dedicated pgx pool so a saturated ORM connection pool
// cannot mask the database being up.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// DBConnection manages the database connection lifecycle.
type DBConnection struct {
	gormDB *gorm.DB
	pool   *pgxpool.Pool
	config *config.DatabaseConfig
	logger logger.Logger
}

// NewDBConnection opens the gorm handle and the health-check pool, and
// verifies connectivity before returning.
func NewDBConnection(ctx context.Context, cfg *config.DatabaseConfig, log logger.Logger) (*DBConnection, error) {
	log = log.WithComponent("postgres")
	log.Info(ctx, "Initializing PostgreSQL connections", logger.Fields{
		"host":      cfg.Host,
		"port":      cfg.Port,
		"database":  cfg.Database,
		"max_conns": cfg.MaxConns,
	})

	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm connection: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Minute
	poolConfig.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleTime) * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create health-check pool: %w", err)
	}

	conn := &DBConnection{
		gormDB: gormDB,
		pool:   pool,
		config: cfg,
		logger: log,
	}
	if err := conn.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info(ctx, "PostgreSQL connections initialized")
	return conn, nil
}

// Gorm returns the gorm handle used by the repositories.
func (db *DBConnection) Gorm() *gorm.DB {
	return db.gormDB
}

// AutoMigrate creates or updates the analytics tables.
func (db *DBConnection) AutoMigrate() error {
	return db.gormDB.AutoMigrate(
		&models.Tenant{},
		&models.AssessmentRecord{},
		&models.ControlResponse{},
		&models.AnalyticsSnapshot{},
		&models.BenchmarkReference{},
	)
}

// Ping verifies database connectivity through the dedicated pool.
func (db *DBConnection) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := db.pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}

	if latency := time.Since(start); latency > 100*time.Millisecond {
		db.logger.Warn(ctx, "High database latency", logger.Fields{
			"latency_ms": latency.Milliseconds(),
		})
	}
	return nil
}

// HealthCheck reports pool statistics for the readiness endpoint.
func (db *DBConnection) HealthCheck(ctx context.Context) (map[string]interface{}, error) {
	if err := db.Ping(ctx); err != nil {
		return nil, err
	}

	stats := db.pool.Stat()
	return map[string]interface{}{
		"status":               "healthy",
		"total_connections":    stats.TotalConns(),
		"idle_connections":     stats.IdleConns(),
		"acquired_connections": stats.AcquiredConns(),
		"max_connections":      db.config.MaxConns,
	}, nil
}

// Close shuts down both connection handles.
func (db *DBConnection) Close() {
	db.pool.Close()
	if sqlDB, err := db.gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	db.logger.Info(context.Background(), "PostgreSQL connections closed")
}
