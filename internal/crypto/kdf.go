package crypto

import "crypto/md5"

// Stretch expands a passphrase into an n-byte key by tiling its MD5
// digest: the digest fills the first 16 bytes and is repeat-copied into
// each following 16-byte (or shorter, final) chunk. Shorter keys truncate
// the digest. The output depends only on the inputs, so both endpoints of
// a pre-shared passphrase derive the same key.
//
// This is key stretching, not salted derivation: there is no per-session
// randomness and no iteration count. The wire format requires it.
func Stretch(passphrase string, n int) []byte {
	digest := md5.Sum([]byte(passphrase))
	out := make([]byte, n)
	for off := 0; off < n; off += md5.Size {
		copy(out[off:], digest[:])
	}
	return out
}
