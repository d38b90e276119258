package storage

import (
	"context"
	"sort"
	"sync"
)

// MemStore is a Store backed by an in-memory sorted map. It exists for
// tests and the demo CLI; BumpTTL only records the extension, it never
// expires anything.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	ttl  map[string]uint32
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string][]byte),
		ttl:  make(map[string]uint32),
	}
}

func (m *MemStore) Read(_ context.Context, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemStore) Write(_ context.Context, key []byte, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[string(key)] = v
	return nil
}

func (m *MemStore) Delete(_ context.Context, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, string(key))
	delete(m.ttl, string(key))
	return nil
}

func (m *MemStore) Batch(ctx context.Context, ops []BatchOperation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, op := range ops {
		switch op.Type {
		case BatchPut:
			v := make([]byte, len(op.Value))
			copy(v, op.Value)
			m.data[string(op.Key)] = v
		case BatchDelete:
			delete(m.data, string(op.Key))
		}
	}
	return nil
}

func (m *MemStore) BumpTTL(_ context.Context, key []byte, extendBy uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[string(key)]; !ok {
		return ErrKeyNotFound
	}
	m.ttl[string(key)] += extendBy
	return nil
}

type memIterator struct {
	keys []string
	data map[string][]byte
	pos  int
}

func (m *MemStore) Iterator(_ context.Context, start, end []byte) (Iterator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if start != nil && k < string(start) {
			continue
		}
		if end != nil && k > string(end) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	snapshot := make(map[string][]byte, len(keys))
	for _, k := range keys {
		snapshot[k] = m.data[k]
	}
	return &memIterator{keys: keys, data: snapshot, pos: -1}, nil
}

func (it *memIterator) Next() bool {
	it.pos++
	return it.pos < len(it.keys)
}

func (it *memIterator) Key() []byte {
	return []byte(it.keys[it.pos])
}

func (it *memIterator) Value() []byte {
	return it.data[it.keys[it.pos]]
}

func (it *memIterator) Error() error { return nil }
func (it *memIterator) Close() error { return nil }
