package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the password.
// Must stay byte-compatible with the digests already stored in
// users.password_hash, so no salt and no iteration count.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
