// Package actordata persists small per-actor string values such as
// perfect-catch streaks and last-caught timestamps.
package actordata

import (
	"context"
	"maps"
	"sync"
)

// Store is per-actor key/value storage
type Store interface {
	Get(ctx context.Context, actorID, key string) (string, bool, error)
	Set(ctx context.Context, actorID, key, value string) error
	// All returns every value stored for the actor
	All(ctx context.Context, actorID string) (map[string]string, error)
	// Clear removes every value stored for the actor and reports how many were removed
	Clear(ctx context.Context, actorID string) (int, error)
}

// Backend is a Store with a connection behind it
type Backend interface {
	Store
	Ping(ctx context.Context) error
	Close() error
}

// Memory is a Store that lives only as long as the process
type Memory struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, actorID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[actorID][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, actorID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	actor, ok := m.values[actorID]
	if !ok {
		actor = make(map[string]string)
		m.values[actorID] = actor
	}
	actor[key] = value
	return nil
}

func (m *Memory) All(_ context.Context, actorID string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.values[actorID]), nil
}

func (m *Memory) Clear(_ context.Context, actorID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.values[actorID])
	delete(m.values, actorID)
	return n, nil
}

func (m *Memory) Ping(context.Context) error { return nil }
func (m *Memory) Close() error               { return nil }
