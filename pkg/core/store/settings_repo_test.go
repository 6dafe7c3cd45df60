package store

import (
	"context"
	"os"
	"testing"

	"smart_performance/pkg/core/credential"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_NoPool(t *testing.T) {
	if GetPool() != nil {
		t.Skip("shared pool already initialized")
	}
	_, err := NewSettingsRepo(nil).Get(context.Background(), "GEMINI_API_KEY")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, credential.ErrNotFound)
}

func TestSettingsRepo_Postgres(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, InitDB(ctx, dbURL))
	defer Close()

	_, err := GetPool().Exec(ctx, `CREATE TABLE IF NOT EXISTS app_settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = GetPool().Exec(ctx, `INSERT INTO app_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, "smart_performance_test_key", "pg-key")
	require.NoError(t, err)
	defer GetPool().Exec(ctx, `DELETE FROM app_settings WHERE key = $1`, "smart_performance_test_key")

	repo := NewSettingsRepo(nil)
	v, err := repo.Get(ctx, "smart_performance_test_key")
	require.NoError(t, err)
	assert.Equal(t, "pg-key", v)

	_, err = repo.Get(ctx, "smart_performance_missing_key")
	assert.ErrorIs(t, err, credential.ErrNotFound)
}
