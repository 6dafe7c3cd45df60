package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"smart_performance/pkg/core/appconfig"
	"smart_performance/pkg/core/credential"
	"smart_performance/pkg/core/generation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentialStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.hjson")
	require.NoError(t, os.WriteFile(path, []byte("{ GEMINI_API_KEY: \"stored-key\" }"), 0o600))

	s, closer, err := NewCredentialStore(context.Background(), appconfig.CredentialConfig{Store: StoreFile, FilePath: path})
	require.NoError(t, err)
	assert.Nil(t, closer)

	v, err := s.Get(context.Background(), "GEMINI_API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "stored-key", v)
}

func TestNewCredentialStore_None(t *testing.T) {
	s, closer, err := NewCredentialStore(context.Background(), appconfig.CredentialConfig{Store: StoreNone})
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Nil(t, closer)
}

func TestNewCredentialStore_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  appconfig.CredentialConfig
	}{
		{"unknown", appconfig.CredentialConfig{Store: "browser"}},
		{"redis without addr", appconfig.CredentialConfig{Store: StoreRedis}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewCredentialStore(context.Background(), tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNew_UsesConfiguredNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.hjson")
	require.NoError(t, os.WriteFile(path, []byte(`{ "custom-key": "from-file" }`), 0o600))

	cfg := appconfig.Default()
	cfg.Credential.FilePath = path
	cfg.Credential.Key = "custom-key"
	cfg.Credential.EnvVar = "SMART_PERF_TEST_UNSET_VAR"

	stack, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer stack.Close()

	key, ok := stack.Credentials.Resolve(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "from-file", key)
	assert.Equal(t, cfg.Agent.ActiveProvider, stack.Agents.GetActiveProvider())
}

func TestNew_NoStoreStillRefusesWithoutKey(t *testing.T) {
	cfg := appconfig.Default()
	cfg.Credential.Store = StoreNone
	cfg.Credential.EnvVar = "SMART_PERF_TEST_UNSET_VAR"

	stack, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)

	_, err = stack.Orchestrator.GenerateKPIs(context.Background(), "خدمة العملاء")
	assert.ErrorIs(t, err, generation.ErrMissingCredential)
}

var _ credential.Store = (*credential.FileStore)(nil)
