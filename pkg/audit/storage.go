package audit

import (
	"context"
	"sync"
)

// Storage persists audit events. The store-management backend supplies its
// own implementation on top of its audit-log table; MemoryStorage ships for
// tests and development setups.
type Storage interface {
	Store(ctx context.Context, event Event) error
}

// MemoryStorage keeps events in memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryStorage creates an empty in-memory event store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store appends the event.
func (m *MemoryStorage) Store(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Events returns a copy of every stored event in insertion order.
func (m *MemoryStorage) Events() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// ByKind returns a copy of the stored events with the given kind.
func (m *MemoryStorage) ByKind(kind Kind) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Event
	for _, e := range m.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
