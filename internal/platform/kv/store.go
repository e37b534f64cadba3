// Package kv is the durable key-value store behind every piece of storefront
// state. Backends may fail at any time; Store absorbs those failures and keeps
// the affected keys in a process-lifetime memory overlay so callers never see
// an error and still read back what they wrote.
package kv

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	apperrors "ancare/internal/platform/errors"
)

// Backend is a persistence medium for string values.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type entry struct {
	value   string
	removed bool
}

type Store struct {
	backend Backend
	logger  *zap.Logger
	mu      sync.Mutex
	overlay map[string]entry
}

func NewStore(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if backend == nil {
		backend = BlockedBackend{}
	}
	return &Store{backend: backend, logger: logger, overlay: map[string]entry{}}
}

// Get returns the value for key. Keys written while the backend was failing
// are served from memory.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.overlay[key]; ok {
		if e.removed {
			return "", false
		}
		return e.value, true
	}
	var (
		value string
		found bool
	)
	err := guard(func() error {
		var err error
		value, found, err = s.backend.Get(ctx, key)
		return err
	})
	if err != nil {
		s.logger.Warn("kv get failed, treating key as absent", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, found
}

// Set persists value and reports whether the backend accepted it. On false
// the value is still visible to later reads in this process.
func (s *Store) Set(ctx context.Context, key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := guard(func() error { return s.backend.Set(ctx, key, value) })
	if err != nil {
		s.logger.Warn("kv set failed, keeping value in memory", zap.String("key", key), zap.Error(err))
		s.overlay[key] = entry{value: value}
		return false
	}
	delete(s.overlay, key)
	return true
}

// Remove deletes key and reports whether the backend accepted it.
func (s *Store) Remove(ctx context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := guard(func() error { return s.backend.Remove(ctx, key) })
	if err != nil {
		s.logger.Warn("kv remove failed, masking key in memory", zap.String("key", key), zap.Error(err))
		s.overlay[key] = entry{removed: true}
		return false
	}
	delete(s.overlay, key)
	return true
}

// MemoryOnly lists keys whose current value exists only in this process.
func (s *Store) MemoryOnly() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.overlay))
	for key := range s.overlay {
		keys = append(keys, key)
	}
	return keys
}

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: backend panic: %v", apperrors.ErrStorageUnavailable, r)
		}
	}()
	return fn()
}
