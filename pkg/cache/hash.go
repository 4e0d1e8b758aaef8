package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a stage-prefixed cache key: "prefix:sha256(parts)". The
// parts are the content hash of the stage input plus the option struct that
// shaped the output, so tree, layout, and artifact keys stay disjoint and
// any changed option misses cleanly. JSON-serializing the parts keeps field
// order (and therefore the key) stable across runs.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 content hash used for Newick inputs, serialized
// trees, and serialized layouts. Returns the full 64-character hex string;
// it is exposed in API responses as the tree hash.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
