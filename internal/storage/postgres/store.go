package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"talent-match/internal/config"
	"talent-match/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store persists each collection as a single jsonb snapshot row, preserving
// the whole-snapshot read/write contract over a shared database.
type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (storage.Store, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(cfg.DBHost),
		strings.TrimSpace(cfg.DBPort),
		strings.TrimSpace(cfg.DBUser),
		cfg.DBPassword,
		strings.TrimSpace(cfg.DBName),
		strings.TrimSpace(cfg.DBSSLMode),
	)

	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}

	if _, err := p.Exec(ctx, schema); err != nil {
		p.Close()
		return nil, fmt.Errorf("ensure collections table: %w", err)
	}

	return &Store{pool: p}, nil
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.pool == nil {
		return nil, fmt.Errorf("nil store")
	}
	var data []byte
	row := s.pool.QueryRow(ctx, `SELECT data FROM collections WHERE name = $1`, key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("nil store")
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		key, data,
	)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("nil store")
	}
	_, err := s.pool.Exec(ctx, `DELETE FROM collections WHERE name = $1`, key)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	s.pool.Close()
	return nil
}
