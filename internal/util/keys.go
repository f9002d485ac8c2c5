package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// MaxRawIDLen is the longest id embedded verbatim in a storage key.
const MaxRawIDLen = 200

// StorageKey returns "payment:<ns>:<id>". Ids longer than MaxRawIDLen are
// replaced by "#" and the first 32 hex chars of their sha256.
func StorageKey(ns, id string) string {
	prefix := "payment:" + ns + ":"
	if len(id) <= MaxRawIDLen {
		return prefix + id
	}
	sum := sha256.Sum256([]byte(id))
	return prefix + "#" + hex.EncodeToString(sum[:16])
}
