package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores parsed values keyed by source. Values are shared read-only
// between scoring runs, so implementations never hand out copies.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key derives a cache key from a source path.
func Key(path string) string {
	hash := sha256.Sum256([]byte(path))
	return "callsift:v1:" + hex.EncodeToString(hash[:])
}
