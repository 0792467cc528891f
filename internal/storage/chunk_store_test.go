package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/annel0/mmo-coords/internal/coords"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChunkStore(t *testing.T, opts ChunkStoreOptions) *ChunkStore {
	t.Helper()
	store, err := NewChunkStore(opts)
	require.NoError(t, err, "Не удалось создать хранилище")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestChunkStorePutGet(t *testing.T) {
	for _, compress := range []bool{false, true} {
		t.Run(map[bool]string{false: "raw", true: "zstd"}[compress], func(t *testing.T) {
			store := setupChunkStore(t, ChunkStoreOptions{Compress: compress})
			ctx := context.Background()

			c := coords.New3[coords.Abs, coords.Chunk](-1, 40, -2)
			data := bytes.Repeat([]byte("stone;"), 200)
			require.NoError(t, store.Put(ctx, c, data))

			got, found, err := store.Get(ctx, c)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, data, got)

			_, found, err = store.Get(ctx, c.WithZ(-1))
			require.NoError(t, err)
			assert.False(t, found, "другой уровень - другой ключ")

			require.NoError(t, store.Delete(ctx, c))
			_, found, err = store.Get(ctx, c)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestChunkStoreEmptyPayload(t *testing.T) {
	store := setupChunkStore(t, ChunkStoreOptions{})
	ctx := context.Background()
	c := coords.New3[coords.Abs, coords.Chunk](0, 0, 0)

	require.NoError(t, store.Put(ctx, c, nil))
	got, found, err := store.Get(ctx, c)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestChunkStoreListSegment(t *testing.T) {
	store := setupChunkStore(t, ChunkStoreOptions{Compress: true})
	ctx := context.Background()

	inside := []coords.TripointAbsChunk{
		coords.New3[coords.Abs, coords.Chunk](-1, -1, 0),
		coords.New3[coords.Abs, coords.Chunk](-32, -32, 0),
		coords.New3[coords.Abs, coords.Chunk](-5, -7, 3),
		coords.New3[coords.Abs, coords.Chunk](-5, -7, -3),
	}
	outside := []coords.TripointAbsChunk{
		coords.New3[coords.Abs, coords.Chunk](0, 0, 0),
		coords.New3[coords.Abs, coords.Chunk](-33, -1, 0),
		coords.New3[coords.Abs, coords.Chunk](-1, -320, 0),
	}
	for _, c := range append(append([]coords.TripointAbsChunk{}, inside...), outside...) {
		require.NoError(t, store.Put(ctx, c, []byte{1}))
	}

	seg := coords.New[coords.Abs, coords.Segment](-1, -1)
	got, err := store.ListSegment(ctx, seg)
	require.NoError(t, err)

	want := append([]coords.TripointAbsChunk{}, inside...)
	coords.Sort(want)
	assert.Equal(t, want, got)

	for _, c := range got {
		assert.Equal(t, seg, coords.ProjectTo[coords.Segment](c.XY()))
	}

	empty, err := store.ListSegment(ctx, coords.New[coords.Abs, coords.Segment](100, 100))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestChunkStoreClosed(t *testing.T) {
	store, err := NewChunkStore(ChunkStoreOptions{})
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	ctx := context.Background()
	c := coords.New3[coords.Abs, coords.Chunk](0, 0, 0)
	assert.ErrorIs(t, store.Put(ctx, c, []byte{1}), ErrStoreClosed)
	_, _, err = store.Get(ctx, c)
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestChunkStoreOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	c := coords.New3[coords.Abs, coords.Chunk](12, -7, 1)

	store, err := NewChunkStore(ChunkStoreOptions{Dir: dir, Compress: true})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, c, []byte("persisted")))
	require.NoError(t, store.Close())

	reopened := setupChunkStore(t, ChunkStoreOptions{Dir: dir})
	got, found, err := reopened.Get(ctx, c)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("persisted"), got, "сжатое значение читается и без Compress")
}

func TestChunkStoreMetrics(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	store := setupChunkStore(t, ChunkStoreOptions{Metrics: metrics})
	ctx := context.Background()
	c := coords.New3[coords.Abs, coords.Chunk](1, 1, 0)

	require.NoError(t, store.Put(ctx, c, []byte("abc")))
	_, _, err := store.Get(ctx, c)
	require.NoError(t, err)
	_, _, err = store.Get(ctx, c.WithX(2))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.chunkOps.WithLabelValues("put")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.chunkOps.WithLabelValues("get")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.chunkOps.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.chunkBytes))
}

func TestChunkKeyRoundTrip(t *testing.T) {
	for _, c := range []coords.TripointAbsChunk{
		coords.New3[coords.Abs, coords.Chunk](0, 0, 0),
		coords.New3[coords.Abs, coords.Chunk](-1, 31, coords.MinZ),
		coords.New3[coords.Abs, coords.Chunk](1_000_000, -1_000_000, coords.MaxZ),
	} {
		got, err := parseChunkKey(chunkKey(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := parseChunkKey([]byte("region:1:2"))
	assert.Error(t, err)
}
