package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T, dsn string) (*DB, context.Context) {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, DriverSQLite, dsn)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { db.Close() })

	return db, ctx
}

func TestNewDB_RejectsUnknownDriver(t *testing.T) {
	_, err := NewDB(context.Background(), "mysql", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage driver")
}

func TestKeyValueStore_Operations(t *testing.T) {
	db, ctx := setupTestStore(t, ":memory:")
	assert.Equal(t, DriverSQLite, db.Driver())

	store, err := NewKeyValueStore(ctx, db)
	require.NoError(t, err)

	_, found, err := store.GetItem(ctx, "@myassetly_assets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetItem(ctx, "@myassetly_assets", `[]`))
	require.NoError(t, store.SetItem(ctx, "@myassetly_assets", `[{"id":"a"}]`))

	value, found, err := store.GetItem(ctx, "@myassetly_assets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, value)

	require.NoError(t, store.RemoveItem(ctx, "@myassetly_assets"))
	require.NoError(t, store.RemoveItem(ctx, "@myassetly_assets"))

	_, found, err = store.GetItem(ctx, "@myassetly_assets")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKeyValueStore_PersistsAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assetly.db")

	db, ctx := setupTestStore(t, path)
	store, err := NewKeyValueStore(ctx, db)
	require.NoError(t, err)
	require.NoError(t, store.SetItem(ctx, "currency", "MYR"))
	require.NoError(t, db.Close())

	reopened, _ := setupTestStore(t, path)
	store, err = NewKeyValueStore(ctx, reopened)
	require.NoError(t, err)

	value, found, err := store.GetItem(ctx, "currency")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MYR", value)
}
