package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a short, stable identifier for a fingerprint text.
func Digest(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
