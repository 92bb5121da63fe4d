package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, found, err := store.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetItem(ctx, "theme", "dark"))
	require.NoError(t, store.SetItem(ctx, "theme", "light"))

	value, found, err := store.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)

	require.NoError(t, store.RemoveItem(ctx, "theme"))
	require.NoError(t, store.RemoveItem(ctx, "theme"), "removing an absent key is not an error")

	_, found, err = store.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore()
	assert.ErrorIs(t, store.SetItem(ctx, "k", "v"), context.Canceled)
	_, _, err := store.GetItem(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
