package domain

import "context"

// KeyValueStore defines the local persistence port.
// Each key holds one opaque string document that is overwritten wholesale.
type KeyValueStore interface {
	// GetItem returns the value stored under key; found is false when the key is absent
	GetItem(ctx context.Context, key string) (value string, found bool, err error)

	// SetItem creates or replaces the value under key
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key; removing an absent key is not an error
	RemoveItem(ctx context.Context, key string) error
}
