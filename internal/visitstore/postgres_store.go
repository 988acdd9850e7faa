// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package visitstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pip-install-python/dash-improve-my-llms/internal/models"
)

// PostgresStore persists visits in a single append-only table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 2 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("Visit store connected", "backend", "postgres")
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS visits (
			id BIGSERIAL PRIMARY KEY,
			ts TIMESTAMPTZ NOT NULL,
			path TEXT NOT NULL,
			device_type TEXT NOT NULL,
			bot_category TEXT NOT NULL DEFAULT '',
			bot_name TEXT NOT NULL DEFAULT '',
			visitor_id TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure visits schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, visits []models.Visit) error {
	if len(visits) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, v := range visits {
		batch.Queue(`
			INSERT INTO visits (ts, path, device_type, bot_category, bot_name, visitor_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, v.Timestamp, v.Path, v.DeviceType, v.BotCategory, v.BotName, v.VisitorID)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range visits {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert visit batch: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]models.Visit, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx, `
		SELECT ts, path, device_type, bot_category, bot_name, visitor_id
		FROM visits
		ORDER BY ts DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent visits: %w", err)
	}
	defer rows.Close()

	var visits []models.Visit
	for rows.Next() {
		var v models.Visit
		if err := rows.Scan(&v.Timestamp, &v.Path, &v.DeviceType, &v.BotCategory, &v.BotName, &v.VisitorID); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (s *PostgresStore) Stats(ctx context.Context) (models.VisitStats, error) {
	var stats models.VisitStats

	rows, err := s.pool.Query(ctx, `
		SELECT device_type, bot_category, COUNT(*)
		FROM visits
		GROUP BY device_type, bot_category
	`)
	if err != nil {
		return stats, fmt.Errorf("failed to query visit stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var deviceType, botCategory string
		var count int
		if err := rows.Scan(&deviceType, &botCategory, &count); err != nil {
			return stats, fmt.Errorf("failed to scan visit stats: %w", err)
		}
		switch deviceType {
		case models.DeviceMobile:
			stats.Mobile += count
		case models.DeviceTablet:
			stats.Tablet += count
		case models.DeviceBot:
			stats.Bot += count
			if stats.BotsByCategory == nil {
				stats.BotsByCategory = make(map[string]int)
			}
			stats.BotsByCategory[botCategory] += count
		default:
			stats.Desktop += count
		}
		stats.Total += count
	}
	return stats, rows.Err()
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
		slog.Info("Visit store closed", "backend", "postgres")
	}
}
