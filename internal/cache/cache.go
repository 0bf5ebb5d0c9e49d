package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for verdict memoization
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a record's canonical serialization.
// Identical records hash to the same key, so re-verifying an unchanged
// record is a lookup.
func Key(payload []byte) string {
	hash := sha256.Sum256(payload)
	return "trustgate:v1:" + hex.EncodeToString(hash[:])
}
