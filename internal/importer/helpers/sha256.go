package helpers

import (
	"crypto/sha256"
	"fmt"
)

// Sha256String calculates the SHA256 hash of a string and returns its
// hexadecimal representation.
func Sha256String(s string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(s)))
}
