// Package cryptox implements credential hashing for Meetly.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the SHA-256 digest of password, rendered as a
// 64-character lowercase hex string.
//
// The digest is deterministic and unsalted: identical passwords always
// produce identical digests. That weakness is part of the stored file
// contract and must not be changed without migrating the store.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}
