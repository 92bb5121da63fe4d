package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/assetly-backend/internal/config"
)

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	store, closeFn, err := Open(ctx, config.StorageMemory, "")
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, store.SetItem(ctx, "theme", "dark"))
	value, found, err := store.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestOpen_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assetly.db")

	store, closeFn, err := Open(ctx, config.StorageSQLite, path)
	require.NoError(t, err)
	require.NoError(t, store.SetItem(ctx, "currency", "MYR"))
	require.NoError(t, closeFn())

	reopened, closeFn, err := Open(ctx, config.StorageSQLite, path)
	require.NoError(t, err)
	defer closeFn()

	value, found, err := reopened.GetItem(ctx, "currency")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MYR", value)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "mysql", "dsn")
	assert.Error(t, err)
}
