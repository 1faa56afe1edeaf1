package storage

import "context"

// Snapshot keys used by the registries and the session manager
const (
	KeyAccounts    = "accounts-snapshot"
	KeyCommunities = "communities-snapshot"
	KeySession     = "session-snapshot"
)

// Store defines the interface for persisting named byte blobs.
//
// A missing key is not an error: Get returns (nil, nil) and callers treat
// absence as "no data yet". Writes are durable but not transactional across
// multiple keys.
type Store interface {
	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Get returns the value stored under key, or (nil, nil) if absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key; deleting an absent key is a no-op
	Delete(ctx context.Context, key string) error
}
