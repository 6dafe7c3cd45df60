package agent

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"smart_performance/pkg/core/llm"
)

const (
	ProviderGemini       = "gemini"
	ProviderGeminiLegacy = "gemini-legacy"
)

// ErrNoProvider is returned when Resolve finds no registered provider to use.
var ErrNoProvider = errors.New("agent: no provider registered")

type Config struct {
	ActiveProvider string                `yaml:"active_provider"`
	Tasks          map[string]TaskConfig `yaml:"tasks"`
}

type TaskConfig struct {
	Provider    string `yaml:"provider"` // Optional override
	Description string `yaml:"description"`
}

type Manager struct {
	mu        sync.RWMutex
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return NewManagerWithProviders(config, map[string]llm.Provider{
		ProviderGemini:       &llm.GeminiProvider{},
		ProviderGeminiLegacy: &llm.LegacyGeminiProvider{},
	})
}

// NewManagerWithProviders is used by tests and by callers wiring custom endpoints.
func NewManagerWithProviders(config Config, providers map[string]llm.Provider) *Manager {
	return &Manager{config: config, providers: providers}
}

// Resolve picks the provider for a task: task override, then global active
// provider, then gemini.
func (m *Manager) Resolve(task string) (string, llm.Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if tc, ok := m.config.Tasks[task]; ok && tc.Provider != "" {
		if p := m.providers[tc.Provider]; p != nil {
			return tc.Provider, p, nil
		}
	}
	if p := m.providers[m.config.ActiveProvider]; p != nil {
		return m.config.ActiveProvider, p, nil
	}
	if p := m.providers[ProviderGemini]; p != nil {
		return ProviderGemini, p, nil
	}
	return "", nil, fmt.Errorf("%w for task %q", ErrNoProvider, task)
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.providers[newProvider] == nil {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	return nil
}

func (m *Manager) GetActiveProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveProvider
}

// Available lists registered provider names in sorted order.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.providers))
	for k := range m.providers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
