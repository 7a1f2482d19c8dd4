package domain

import (
	"log/slog"
	"sync"
)

// Manager loads domain configurations through a Store and caches validated
// results for the process lifetime. The cache is read-mostly: after a
// config is cached it is never mutated, only evicted by Invalidate.
type Manager struct {
	store Store

	mu    sync.RWMutex
	cache map[string]*Config
}

// NewManager creates a Manager on top of the given Store.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		cache: make(map[string]*Config),
	}
}

// Load returns the validated configuration for the named domain. Repeated
// calls with the same name return the cached instance without re-parsing.
func (m *Manager) Load(name string) (*Config, error) {
	m.mu.RLock()
	cfg, ok := m.cache[name]
	m.mu.RUnlock()
	if ok {
		return cfg, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another goroutine may have populated the entry while we waited.
	if cfg, ok := m.cache[name]; ok {
		return cfg, nil
	}

	cfg, err := m.load(name)
	if err != nil {
		return nil, err
	}
	m.cache[name] = cfg

	slog.Info("domain loaded",
		"domain", name,
		"languages", len(cfg.Languages),
		"categories", len(cfg.Categories),
	)
	return cfg, nil
}

// Check re-parses and validates the named domain without touching the
// cache. Used by the CLI validate command so a stale cache entry can never
// mask a broken file.
func (m *Manager) Check(name string) (*Config, error) {
	return m.load(name)
}

// Invalidate drops the cached configuration for the named domain.
func (m *Manager) Invalidate(name string) {
	m.mu.Lock()
	delete(m.cache, name)
	m.mu.Unlock()
}

// Domains returns the sorted names of all available domains.
func (m *Manager) Domains() ([]string, error) {
	return m.store.List()
}

func (m *Manager) load(name string) (*Config, error) {
	data, err := m.store.FetchRaw(name)
	if err != nil {
		return nil, err
	}
	return Parse(name, data)
}
