package kv

import (
	"context"
	"fmt"
	"sync"

	apperrors "ancare/internal/platform/errors"
)

type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: map[string]string{}}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryBackend) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// BlockedBackend refuses every operation, the way a browser in private mode
// refuses local storage.
type BlockedBackend struct{}

func (BlockedBackend) Get(context.Context, string) (string, bool, error) {
	return "", false, fmt.Errorf("%w: blocked", apperrors.ErrStorageUnavailable)
}

func (BlockedBackend) Set(context.Context, string, string) error {
	return fmt.Errorf("%w: blocked", apperrors.ErrStorageUnavailable)
}

func (BlockedBackend) Remove(context.Context, string) error {
	return fmt.Errorf("%w: blocked", apperrors.ErrStorageUnavailable)
}
