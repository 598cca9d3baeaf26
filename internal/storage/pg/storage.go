package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StorageConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLife     time.Duration
	MaxConnIdleTime time.Duration
}

// EventPublisher delivers the order-created event. CreateOrder invokes it
// inside the open transaction, before commit: an order only exists if its
// creation event was deliverable.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type Storage struct {
	logger    *slog.Logger
	pool      *pgxpool.Pool
	publisher EventPublisher
	topic     string
}

func NewPGStorage(ctx context.Context, log *slog.Logger, cfg *StorageConfig, pub EventPublisher, topic string) (*Storage, error) {
	pgConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	pgConfig.MaxConns = cfg.MaxConns
	pgConfig.MinConns = cfg.MinConns
	pgConfig.MaxConnLifetime = cfg.MaxConnLife
	pgConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, pgConfig)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return &Storage{
		logger:    log,
		pool:      pool,
		publisher: pub,
		topic:     topic,
	}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
