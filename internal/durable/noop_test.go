package durable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNoOpStore(t *testing.T) {
	store := NewNoOpStore()

	require.NoError(t, store.SetItem(t.Context(), "key", []byte("value"), time.Minute))

	_, err := store.GetItem(t.Context(), "key")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.RemoveItem(t.Context(), "key"))
	require.NoError(t, store.Close())
}
