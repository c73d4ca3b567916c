package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStoreGetAbsentKey(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			value, err := store.Get(context.Background(), "missing")
			require.NoError(t, err)
			assert.Nil(t, value)
		})
	}
}

func TestStoreSetAndGet(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "greeting", []byte("hello")))

			value, err := store.Get(ctx, "greeting")
			require.NoError(t, err)
			assert.Equal(t, []byte("hello"), value)
		})
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "counter", []byte("1")))
			require.NoError(t, store.Set(ctx, "counter", []byte("2")))

			value, err := store.Get(ctx, "counter")
			require.NoError(t, err)
			assert.Equal(t, []byte("2"), value)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "doomed", []byte("x")))
			require.NoError(t, store.Delete(ctx, "doomed"))

			value, err := store.Get(ctx, "doomed")
			require.NoError(t, err)
			assert.Nil(t, value)
		})
	}
}

func TestStoreDeleteAbsentKey(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, store.Delete(context.Background(), "never-existed"))
		})
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("immutable")
	require.NoError(t, store.Set(ctx, "key", original))
	original[0] = 'X'

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), value)

	value[0] = 'Y'
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), again)
}
