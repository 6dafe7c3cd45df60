// Package credential resolves the Gemini API key for each generation call.
//
// The environment wins over the persistent store. The literal "undefined"
// counts as unset, since that is what a bundler leaves behind when the
// variable is missing at build time. Nothing here caches or writes a key.
package credential

import (
	"context"
	"errors"
	"os"

	"smart_performance/pkg/platform/logger"
)

const (
	DefaultEnvVar = "GEMINI_API_KEY"
	DefaultKey    = "GEMINI_API_KEY"

	undefinedSentinel = "undefined"
)

// ErrNotFound is returned by stores when the key has never been set.
var ErrNotFound = errors.New("credential: key not found")

// LookupFunc reads an environment value; os.LookupEnv fits.
type LookupFunc func(key string) (string, bool)

// Store is a read-only string-keyed persistent store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
}

type Resolver struct {
	Env    LookupFunc
	Store  Store // optional
	EnvVar string
	Key    string
	Log    *logger.Logger
}

// NewResolver builds a resolver over the process environment and store.
func NewResolver(store Store, log *logger.Logger) *Resolver {
	return &Resolver{
		Env:    os.LookupEnv,
		Store:  store,
		EnvVar: DefaultEnvVar,
		Key:    DefaultKey,
		Log:    log,
	}
}

// Resolve returns the credential and true, or "" and false when absent.
func (r *Resolver) Resolve(ctx context.Context) (string, bool) {
	if r.Env != nil {
		if v, ok := r.Env(r.envVar()); ok && usable(v) {
			return v, true
		}
	}

	if r.Store == nil {
		return "", false
	}
	v, err := r.Store.Get(ctx, r.key())
	if err != nil {
		if !errors.Is(err, ErrNotFound) && r.Log != nil {
			r.Log.Warn("credential store read failed", "key_name", r.key(), "error", err)
		}
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}

func (r *Resolver) envVar() string {
	if r.EnvVar == "" {
		return DefaultEnvVar
	}
	return r.EnvVar
}

func (r *Resolver) key() string {
	if r.Key == "" {
		return DefaultKey
	}
	return r.Key
}

func usable(v string) bool {
	return v != "" && v != undefinedSentinel
}
