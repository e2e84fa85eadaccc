// Package checksum provides content digests for snapshot versioning.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ETag wraps a digest in the quoted form used by HTTP validators.
func ETag(digest string) string {
	return `"` + digest + `"`
}
