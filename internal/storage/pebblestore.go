package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// ttlPrefix namespaces the shadow keys PebbleStore uses to track each
// entry's accumulated TTL extension, since pebble itself has no notion
// of per-key expiry.
var ttlPrefix = []byte("\x00ttl:")

// PebbleStore is a Store backed by a single cockroachdb/pebble database.
type PebbleStore struct {
	db *pebble.DB
}

// OpenPebbleStore opens (creating if absent) a pebble database at path.
func OpenPebbleStore(path string) (*PebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("storage: open pebble database: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

// Close releases the underlying database handle.
func (p *PebbleStore) Close() error {
	return p.db.Close()
}

func (p *PebbleStore) Read(_ context.Context, key []byte) ([]byte, error) {
	val, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (p *PebbleStore) Write(_ context.Context, key, value []byte) error {
	return p.db.Set(key, value, pebble.Sync)
}

func (p *PebbleStore) Delete(_ context.Context, key []byte) error {
	if err := p.db.Delete(key, pebble.Sync); err != nil {
		return err
	}
	return p.db.Delete(append(append([]byte{}, ttlPrefix...), key...), pebble.Sync)
}

func (p *PebbleStore) Batch(_ context.Context, ops []BatchOperation) error {
	batch := p.db.NewBatch()
	defer batch.Close()

	for _, op := range ops {
		switch op.Type {
		case BatchPut:
			if err := batch.Set(op.Key, op.Value, nil); err != nil {
				return err
			}
		case BatchDelete:
			if err := batch.Delete(op.Key, nil); err != nil {
				return err
			}
		default:
			return fmt.Errorf("storage: unknown batch operation type: %d", op.Type)
		}
	}
	return batch.Commit(pebble.Sync)
}

func (p *PebbleStore) BumpTTL(_ context.Context, key []byte, extendBy uint32) error {
	if _, closer, err := p.db.Get(key); err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return ErrKeyNotFound
		}
		return err
	} else {
		closer.Close()
	}

	shadow := append(append([]byte{}, ttlPrefix...), key...)
	var cur uint32
	if v, closer, err := p.db.Get(shadow); err == nil {
		cur = binary.BigEndian.Uint32(v)
		closer.Close()
	} else if !errors.Is(err, pebble.ErrNotFound) {
		return err
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, cur+extendBy)
	return p.db.Set(shadow, buf, pebble.Sync)
}

type pebbleIterator struct {
	iter       *pebble.Iterator
	start, end []byte
	started    bool
	current    struct {
		key, value []byte
	}
}

func (p *PebbleStore) Iterator(_ context.Context, start, end []byte) (Iterator, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{LowerBound: start})
	if err != nil {
		return nil, err
	}
	return &pebbleIterator{iter: iter, start: start, end: end}, nil
}

func (it *pebbleIterator) Next() bool {
	for {
		if !it.started {
			it.started = true
			if it.start == nil {
				it.iter.First()
			} else {
				it.iter.SeekGE(it.start)
			}
		} else {
			it.iter.Next()
		}

		if !it.iter.Valid() {
			return false
		}
		key := it.iter.Key()
		if bytes.HasPrefix(key, ttlPrefix) {
			continue
		}
		if it.end != nil && bytes.Compare(key, it.end) > 0 {
			return false
		}

		val := it.iter.Value()
		it.current.key = append([]byte{}, key...)
		it.current.value = append([]byte{}, val...)
		return true
	}
}

func (it *pebbleIterator) Key() []byte   { return it.current.key }
func (it *pebbleIterator) Value() []byte { return it.current.value }
func (it *pebbleIterator) Error() error  { return it.iter.Error() }
func (it *pebbleIterator) Close() error  { return it.iter.Close() }
