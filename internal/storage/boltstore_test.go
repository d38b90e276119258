package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoltStoreReadWriteBumpTTL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := OpenBoltStore(filepath.Join(dir, "pool.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write(ctx, []byte("pool"), []byte("record")))
	v, err := s.Read(ctx, []byte("pool"))
	require.NoError(t, err)
	require.Equal(t, []byte("record"), v)

	require.NoError(t, s.BumpTTL(ctx, []byte("pool"), PoolTTL))
	require.ErrorIs(t, s.BumpTTL(ctx, []byte("missing"), PoolTTL), ErrKeyNotFound)
}
