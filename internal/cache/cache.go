package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface the evidence gatherers use to avoid re-querying
// a retrieval backend for the same claim within the TTL
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// SearchKey generates a cache key from a query and the backend kind
func SearchKey(kind, query string) string {
	hash := sha256.Sum256([]byte(kind + "\x00" + query))
	return "crosscheck:v1:" + hex.EncodeToString(hash[:])
}
