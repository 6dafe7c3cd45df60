package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hjson "github.com/hjson/hjson-go/v4"
	"github.com/redis/go-redis/v9"
)

const localStorageFile = ".smart_performance/local_storage.hjson"

// FileStore reads keys from a flat Hjson object on disk. The file is read on
// every Get so edits show up on the next call.
type FileStore struct {
	Path string
}

// DefaultFilePath is ~/.smart_performance/local_storage.hjson.
func DefaultFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, localStorageFile), nil
}

func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("could not read %s: %w", s.Path, err)
	}

	var entries map[string]interface{}
	if err := hjson.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("could not parse %s: %w", s.Path, err)
	}

	raw, ok := entries[key]
	if !ok || raw == nil {
		return "", ErrNotFound
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("entry %q in %s is not a string", key, s.Path)
	}
	return strings.TrimSpace(v), nil
}

// RedisStore reads keys with GET.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore connects lazily; the first Get surfaces connection errors.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{Client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}

// MapStore is an in-memory store.
type MapStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMapStore(entries map[string]string) *MapStore {
	m := make(map[string]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &MapStore{m: m}
}

func (s *MapStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set exists for tests simulating a user updating the stored key.
func (s *MapStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}
