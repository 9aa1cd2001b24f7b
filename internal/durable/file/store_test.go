package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nithin434/go-tier-cache/internal/durable"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SetItem(t.Context(), "products:page1", []byte("blob"), time.Minute))

	got, err := store.GetItem(t.Context(), "products:page1")
	require.NoError(t, err)
	require.Equal(t, []byte("blob"), got)

	require.NoError(t, store.RemoveItem(t.Context(), "products:page1"))
	_, err = store.GetItem(t.Context(), "products:page1")
	require.ErrorIs(t, err, durable.ErrNotFound)
}

func TestGetUnknownKeyIsNotFound(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.GetItem(t.Context(), "never-written")
	require.ErrorIs(t, err, durable.ErrNotFound)
}

func TestRemoveUnknownKeyIsNoOp(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.RemoveItem(t.Context(), "never-written"))
}

func TestSetOverwritesInPlace(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.SetItem(t.Context(), "key", []byte("v1"), 0))
	require.NoError(t, store.SetItem(t.Context(), "key", []byte("v2"), 0))

	got, err := store.GetItem(t.Context(), "key")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "one blob file per key")
}

func TestKeysNeverReachTheFilesystemVerbatim(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	key := "weird/../key with spaces:and%chars"
	require.NoError(t, store.SetItem(t.Context(), key, []byte("blob"), 0))

	got, err := store.GetItem(t.Context(), key)
	require.NoError(t, err)
	require.Equal(t, []byte("blob"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Regexp(t, `^[0-9a-f]{32}\.json$`, entries[0].Name())
}

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "blobs")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
