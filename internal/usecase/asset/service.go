package asset

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/logging"
)

// StorageKey is the key holding the serialized asset collection
const StorageKey = "@myassetly_assets"

// AssetService owns the asset collection and persists it as one JSON document
// The collection is loaded lazily on the first call and kept in memory afterwards.
type AssetService struct {
	Store  domain.KeyValueStore
	Logger *slog.Logger

	// Now and NewID are replaceable for tests
	Now   func() time.Time
	NewID func() string

	mu          sync.Mutex
	initialized bool
	assets      []domain.Asset
}

// NewAssetService creates a new AssetService instance
func NewAssetService(store domain.KeyValueStore, logger *slog.Logger) *AssetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetService{
		Store:  store,
		Logger: logger,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// Initialize loads the persisted collection once; later calls are no-ops
// A missing, unreadable or corrupt document yields an empty collection; the failure is logged, not returned.
func (s *AssetService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(ctx)
}

// AddAsset stores a new asset with a generated ID and creation time
func (s *AssetService) AddAsset(ctx context.Context, input domain.AssetInput) (*domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(ctx)

	asset := domain.NewAsset(s.NewID(), input, s.now())
	s.assets = append(s.assets, asset)

	if err := s.save(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx, s.Logger).Info("Asset added", slog.String("asset_id", asset.ID))
	out := asset.Clone()
	return &out, nil
}

// UpdateAsset merges patch over the stored asset
// Logic:
//  1. Find the asset, ErrNotFound if absent
//  2. Apply the patch; ID and CreatedAt are kept from the stored record
//  3. Stamp UpdatedAt strictly after its previous value
//  4. Persist the whole collection
func (s *AssetService) UpdateAsset(ctx context.Context, id string, patch domain.AssetPatch) (*domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(ctx)

	index := s.indexOf(id)
	if index == -1 {
		return nil, domain.AssetNotFound(id)
	}

	current := s.assets[index]
	updated := patch.Apply(current)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = s.now()
	if !updated.UpdatedAt.After(current.UpdatedAt) {
		updated.UpdatedAt = current.UpdatedAt.Add(time.Nanosecond)
	}

	s.assets[index] = updated
	if err := s.save(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx, s.Logger).Info("Asset updated", slog.String("asset_id", id))
	out := updated.Clone()
	return &out, nil
}

// DeleteAsset removes the asset permanently
func (s *AssetService) DeleteAsset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(ctx)

	index := s.indexOf(id)
	if index == -1 {
		return domain.AssetNotFound(id)
	}

	s.assets = append(s.assets[:index], s.assets[index+1:]...)
	if err := s.save(ctx); err != nil {
		return err
	}

	logging.FromContext(ctx, s.Logger).Info("Asset deleted", slog.String("asset_id", id))
	return nil
}

// GetAssets returns a copy of the collection in insertion order
func (s *AssetService) GetAssets(ctx context.Context) ([]domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(ctx)

	return s.snapshot(func(domain.Asset) bool { return true }), nil
}

// GetAssetByID returns the asset, or nil when no asset has that ID
func (s *AssetService) GetAssetByID(ctx context.Context, id string) (*domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(ctx)

	index := s.indexOf(id)
	if index == -1 {
		return nil, nil
	}
	out := s.assets[index].Clone()
	return &out, nil
}

// GetActiveAssets returns the in-service assets in insertion order
func (s *AssetService) GetActiveAssets(ctx context.Context) ([]domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialize(ctx)

	return s.snapshot(func(a domain.Asset) bool { return a.InService }), nil
}

// ListAssets returns the collection filtered, searched and sorted per opts
func (s *AssetService) ListAssets(ctx context.Context, opts ListOptions) ([]domain.Asset, error) {
	assets, err := s.GetAssets(ctx)
	if err != nil {
		return nil, err
	}
	return Query(assets, opts), nil
}

// Clear removes the persisted document and empties the collection
func (s *AssetService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Store.RemoveItem(ctx, StorageKey); err != nil {
		logging.FromContext(ctx, s.Logger).Error("Failed to clear asset store", slog.String("error", err.Error()))
		return &domain.StorageError{Op: "remove", Key: StorageKey, Err: err}
	}

	s.assets = []domain.Asset{}
	s.initialized = true
	return nil
}

func (s *AssetService) initialize(ctx context.Context) {
	if s.initialized {
		return
	}

	s.assets = []domain.Asset{}
	s.initialized = true

	logger := logging.FromContext(ctx, s.Logger)

	data, found, err := s.Store.GetItem(ctx, StorageKey)
	if err != nil {
		logger.Error("Error initializing asset store, starting empty",
			slog.String("error", (&domain.StorageError{Op: "read", Key: StorageKey, Err: err}).Error()))
		return
	}
	if !found || data == "" {
		return
	}

	var assets []domain.Asset
	if err := json.Unmarshal([]byte(data), &assets); err != nil {
		logger.Error("Error initializing asset store, starting empty",
			slog.String("error", (&domain.StorageError{Op: "decode", Key: StorageKey, Err: err}).Error()))
		return
	}
	if assets != nil {
		s.assets = assets
	}

	logger.Debug("Asset store loaded", slog.Int("count", len(s.assets)))
}

// save overwrites the persisted document with the in-memory collection
// On failure the in-memory change is kept.
func (s *AssetService) save(ctx context.Context) error {
	data, err := json.Marshal(s.assets)
	if err != nil {
		return &domain.StorageError{Op: "encode", Key: StorageKey, Err: err}
	}

	if err := s.Store.SetItem(ctx, StorageKey, string(data)); err != nil {
		logging.FromContext(ctx, s.Logger).Error("Error saving assets to storage", slog.String("error", err.Error()))
		return &domain.StorageError{Op: "write", Key: StorageKey, Err: err}
	}

	return nil
}

func (s *AssetService) indexOf(id string) int {
	for i := range s.assets {
		if s.assets[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AssetService) snapshot(keep func(domain.Asset) bool) []domain.Asset {
	out := make([]domain.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}

func (s *AssetService) now() time.Time {
	// UTC drops the monotonic reading so stored and returned values compare equal
	return s.Now().UTC()
}
