package db

import (
	"context"

	"kittens_server/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool, or returns nil when no DSN is configured. The
// server runs fine without a database; match history is simply not archived.
func Connect(dsn string) *pgxpool.Pool {
	if dsn == "" {
		logger.Info("DATABASE_URL not set, match history disabled")
		return nil
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
