package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "courseplanner"

// Key joins module, kind and id under KeyPrefix, e.g.
// "courseplanner:course:doc:01J...".
func Key(module, kind, id string) string {
	return strings.Join([]string{KeyPrefix, module, kind, id}, ":")
}

// HashParams condenses free-form inputs into a fixed length identifier.
// Inputs are trimmed first so that whitespace variants share a key.
func HashParams(params ...string) string {
	h := sha256.New()
	for _, p := range params {
		h.Write([]byte(strings.TrimSpace(p)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:32]
}

// CourseKey is the key of a cached course document.
func CourseKey(id string) string {
	return Key("course", "doc", id)
}
