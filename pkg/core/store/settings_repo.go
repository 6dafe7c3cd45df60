package store

import (
	"context"
	"errors"
	"fmt"

	"smart_performance/pkg/core/credential"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingsRepo reads single values from the app_settings key/value table.
//
//	CREATE TABLE IF NOT EXISTS app_settings (
//	  key   TEXT PRIMARY KEY,
//	  value TEXT NOT NULL
//	);
type SettingsRepo struct {
	pool *pgxpool.Pool
}

var _ credential.Store = (*SettingsRepo)(nil)

// NewSettingsRepo uses the given pool, or the shared one when nil.
func NewSettingsRepo(p *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: p}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	p := r.pool
	if p == nil {
		p = GetPool()
	}
	if p == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	var value string
	err := p.QueryRow(ctx, `SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", credential.ErrNotFound
		}
		return "", fmt.Errorf("failed to load setting: %w", err)
	}
	return value, nil
}
