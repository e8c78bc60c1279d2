package service

import (
	"context"
	"sort"
	"sync"
)

// memStorage is an in-memory store.LocalStorage.
type memStorage struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[string]string)}
}

func (m *memStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *memStorage) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *memStorage) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memStorage) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// fixedID names every object after the same id.
type fixedID string

func (f fixedID) ObjectName(ext string) string {
	return string(f) + "." + ext
}
