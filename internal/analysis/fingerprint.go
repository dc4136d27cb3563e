package analysis

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns the lower-case hex SHA3-256 digest of input.
func Fingerprint(input string) string {
	sum := sha3.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
