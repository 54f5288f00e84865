package blobstore

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/bucketwiki/common"
)

// MemStore is an in-memory Store used in tests and constructor-injected
// wherever a real backend is not wanted.
type MemStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{buckets: make(map[string]map[string][]byte)}
}

func (s *MemStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.buckets[bucket][key]
	return ok, nil
}

func (s *MemStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.buckets[bucket][key]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemStore) Put(ctx context.Context, bucket, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buckets[bucket]
	if !ok {
		b = make(map[string][]byte)
		s.buckets[bucket] = b
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	b[key] = stored
	return nil
}

func (s *MemStore) List(ctx context.Context, bucket string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.buckets[bucket]))
	for k := range s.buckets[bucket] {
		keys = append(keys, k)
	}
	// map iteration order is random; sort for deterministic tests
	sort.Strings(keys)
	return keys, nil
}
