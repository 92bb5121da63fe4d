package storage

import (
	"context"
	"fmt"

	"github.com/simaogato/assetly-backend/internal/adapter/storage/memory"
	"github.com/simaogato/assetly-backend/internal/adapter/storage/sqlstore"
	"github.com/simaogato/assetly-backend/internal/config"
	"github.com/simaogato/assetly-backend/internal/domain"
)

// Open returns the key-value store selected by driver, plus a close function
func Open(ctx context.Context, driver, dsn string) (domain.KeyValueStore, func() error, error) {
	switch driver {
	case config.StorageMemory:
		return memory.NewStore(), func() error { return nil }, nil
	case config.StorageSQLite, config.StoragePostgres:
		db, err := sqlstore.NewDB(ctx, driver, dsn)
		if err != nil {
			return nil, nil, err
		}
		store, err := sqlstore.NewKeyValueStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
}
