package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "modcn.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := store.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "modcn-draft", `{"dirty":false}`))
			value, ok, err := store.Get(ctx, "modcn-draft")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `{"dirty":false}`, value)

			// Overwrite wins.
			require.NoError(t, store.Set(ctx, "modcn-draft", `{"dirty":true}`))
			value, _, err = store.Get(ctx, "modcn-draft")
			require.NoError(t, err)
			assert.Equal(t, `{"dirty":true}`, value)
		})
	}
}

func TestStoreKeysByPrefix(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "modcn-preset:b", "{}"))
			require.NoError(t, store.Set(ctx, "modcn-preset:a", "{}"))
			require.NoError(t, store.Set(ctx, "modcn-draft", "{}"))

			keys, err := store.Keys(ctx, "modcn-preset:")
			require.NoError(t, err)
			assert.Equal(t, []string{"modcn-preset:a", "modcn-preset:b"}, keys)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "modcn-preset:x", "{}"))
			require.NoError(t, store.Delete(ctx, "modcn-preset:x"))

			_, ok, err := store.Get(ctx, "modcn-preset:x")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting a missing key is not an error.
			require.NoError(t, store.Delete(ctx, "modcn-preset:x"))
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modcn.db")

	store, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "modcn-draft", `{"a":1}`))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(context.Background(), "modcn-draft")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)
}
