// Package bootstrap assembles the generation stack from an appconfig.Config.
// Both the HTTP server and the CLI start here.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"smart_performance/pkg/core/agent"
	"smart_performance/pkg/core/appconfig"
	"smart_performance/pkg/core/credential"
	"smart_performance/pkg/core/generation"
	"smart_performance/pkg/core/store"
	"smart_performance/pkg/platform/logger"
)

const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreNone     = "none"
)

// Stack is the wired generation pipeline.
type Stack struct {
	Agents       *agent.Manager
	Credentials  *credential.Resolver
	Orchestrator *generation.Orchestrator

	closers []func()
}

// Close releases store connections.
func (s *Stack) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// New builds the stack. Store connection failures are returned; a store that
// is reachable but empty is not an error.
func New(ctx context.Context, cfg appconfig.Config, log *logger.Logger) (*Stack, error) {
	if log == nil {
		log = logger.Nop()
	}

	credStore, closer, err := NewCredentialStore(ctx, cfg.Credential)
	if err != nil {
		return nil, err
	}

	s := &Stack{}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}

	resolver := credential.NewResolver(credStore, log.With("component", "credential"))
	resolver.EnvVar = cfg.Credential.EnvVar
	resolver.Key = cfg.Credential.Key

	s.Credentials = resolver
	s.Agents = agent.NewManager(cfg.Agent)
	s.Orchestrator = generation.NewOrchestrator(resolver, s.Agents, log)

	log.Info("generation stack ready",
		"credential_store", cfg.Credential.Store,
		"active_provider", s.Agents.GetActiveProvider(),
	)
	return s, nil
}

// NewCredentialStore opens the configured persistent store. The returned
// closer may be nil.
func NewCredentialStore(ctx context.Context, cfg appconfig.CredentialConfig) (credential.Store, func(), error) {
	switch cfg.Store {
	case StoreFile, "":
		path := cfg.FilePath
		if path == "" {
			p, err := credential.DefaultFilePath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		return &credential.FileStore{Path: path}, nil, nil

	case StoreRedis:
		if cfg.RedisAddr == "" {
			return nil, nil, fmt.Errorf("credential store %q needs redis_addr", cfg.Store)
		}
		rs := credential.NewRedisStore(cfg.RedisAddr)
		return rs, func() { _ = rs.Close() }, nil

	case StorePostgres:
		envName := cfg.DatabaseURLEnv
		if envName == "" {
			envName = "DATABASE_URL"
		}
		if err := store.InitDB(ctx, os.Getenv(envName)); err != nil {
			return nil, nil, fmt.Errorf("credential store %q: %w", cfg.Store, err)
		}
		return store.NewSettingsRepo(store.GetPool()), store.Close, nil

	case StoreNone:
		return nil, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown credential store %q", cfg.Store)
	}
}
