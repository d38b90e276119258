package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	recordsBucket = []byte("records")
	ttlBucket     = []byte("ttl")
)

// BoltStore is a Store backed by a single go.etcd.io/bbolt database,
// using one bucket for values and a sibling bucket for TTL counters.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens (creating if absent) a bbolt database at path and
// ensures both buckets exist.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: open bbolt database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(recordsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(ttlBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Close releases the underlying database handle.
func (b *BoltStore) Close() error {
	return b.db.Close()
}

func (b *BoltStore) Read(_ context.Context, key []byte) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(recordsBucket).Get(key)
		if v == nil {
			return ErrKeyNotFound
		}
		out = append([]byte{}, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *BoltStore) Write(_ context.Context, key, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(recordsBucket).Put(key, value)
	})
}

func (b *BoltStore) Delete(_ context.Context, key []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(recordsBucket).Delete(key); err != nil {
			return err
		}
		return tx.Bucket(ttlBucket).Delete(key)
	})
}

func (b *BoltStore) Batch(_ context.Context, ops []BatchOperation) error {
	return b.db.Batch(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(recordsBucket)
		for _, op := range ops {
			var err error
			switch op.Type {
			case BatchPut:
				err = bucket.Put(op.Key, op.Value)
			case BatchDelete:
				err = bucket.Delete(op.Key)
			default:
				err = fmt.Errorf("storage: unknown batch operation type: %d", op.Type)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BoltStore) BumpTTL(_ context.Context, key []byte, extendBy uint32) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(recordsBucket).Get(key) == nil {
			return ErrKeyNotFound
		}
		ttl := tx.Bucket(ttlBucket)
		var cur uint32
		if v := ttl.Get(key); v != nil {
			cur = binary.BigEndian.Uint32(v)
		}
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, cur+extendBy)
		return ttl.Put(key, buf)
	})
}

type boltIterator struct {
	tx      *bbolt.Tx
	cursor  *bbolt.Cursor
	start   []byte
	end     []byte
	started bool
	current struct {
		key, value []byte
	}
}

func (b *BoltStore) Iterator(_ context.Context, start, end []byte) (Iterator, error) {
	tx, err := b.db.Begin(false)
	if err != nil {
		return nil, err
	}
	bucket := tx.Bucket(recordsBucket)
	if bucket == nil {
		tx.Rollback()
		return nil, errors.New("storage: records bucket missing")
	}
	return &boltIterator{tx: tx, cursor: bucket.Cursor(), start: start, end: end}, nil
}

func (it *boltIterator) Next() bool {
	var k, v []byte
	if !it.started {
		it.started = true
		if it.start == nil {
			k, v = it.cursor.First()
		} else {
			k, v = it.cursor.Seek(it.start)
		}
	} else {
		k, v = it.cursor.Next()
	}

	if k == nil || (it.end != nil && string(k) > string(it.end)) {
		it.current.key, it.current.value = nil, nil
		return false
	}
	it.current.key = k
	it.current.value = v
	return true
}

func (it *boltIterator) Key() []byte   { return it.current.key }
func (it *boltIterator) Value() []byte { return it.current.value }
func (it *boltIterator) Error() error  { return nil }
func (it *boltIterator) Close() error  { return it.tx.Rollback() }
