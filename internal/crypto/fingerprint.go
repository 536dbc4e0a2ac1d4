package crypto

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a short identifier for key material, safe to print.
// The key itself never appears in output or logs.
func Fingerprint(key []byte) string {
	sum := blake3.Sum256(key)
	return hex.EncodeToString(sum[:10])
}
