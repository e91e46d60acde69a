package common

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// HashKey returns a stable hex digest of the JSON encoding of parts, prefixed with name.
// Equal inputs always map to the same key.
func HashKey(name string, parts ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		if err := enc.Encode(p); err != nil {
			return "", fmt.Errorf("failed to encode hash input: %w", err)
		}
	}
	return name + ":" + hex.EncodeToString(h.Sum(nil)), nil
}
