package usecase

import (
	"context"
	"sync"
)

// memoryStorage is a minimal ICheckoutStateStorage for tests.
type memoryStorage struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{items: map[string][]byte{}}
}

func (m *memoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *memoryStorage) raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return string(v), ok
}

type fixedIPLookup struct {
	ip string
}

func (f fixedIPLookup) GetClientIP(context.Context) string {
	return f.ip
}

func strPtr(s string) *string {
	return &s
}
