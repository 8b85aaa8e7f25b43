package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog" // use slog for structured logging
	"time"

	"ncgames/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB bundles the gorm handle with the underlying pool so both can be closed together.
type DB struct {
	Gorm *gorm.DB
	SQL  *sql.DB
}

// ConnectDB opens the Postgres pool through pgx, verifies it and wraps it in gorm.
func ConnectDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	pgxCfg, err := pgx.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	sqlDB := stdlib.OpenDB(*pgxCfg)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify the connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		// close the pool if ping fails to avoid resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gdb, err := OpenGorm(sqlDB, cfg.IsDevelopment())
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("Connected to the database successfully",
		slog.String("host", pgxCfg.Host),
		slog.String("database", pgxCfg.Database))
	return &DB{Gorm: gdb, SQL: sqlDB}, nil
}

// OpenGorm wraps an open pool. Every statement is a single round trip, so gorm's
// implicit transactions are disabled.
func OpenGorm(sqlDB *sql.DB, verbose bool) (*gorm.DB, error) {
	level := gormlogger.Silent
	if verbose {
		level = gormlogger.Warn
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return gdb, nil
}

// Ping checks the pool is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.SQL.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.SQL == nil {
		return nil
	}
	return d.SQL.Close()
}
