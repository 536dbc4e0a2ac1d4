package dgram

import (
	"crypto/cipher"
	"fmt"

	"shroud/internal/ciphers"
)

// streamIVSize is the alignment used when a suite reports no block size.
const streamIVSize = 16

// IVLen returns the IV length for a suite: its block size, or 16 for
// stream suites. It is also the padding alignment and the headroom a
// datagram buffer needs beyond its plaintext.
func IVLen(suite *ciphers.Suite) int {
	if suite.BlockSize == 0 {
		return streamIVSize
	}
	return suite.BlockSize
}

// ivSeed is the fixed, publicly-known IV pattern, truncated to the active
// suite's IV length. See the package comment for why it is constant.
var ivSeed = [ciphers.MaxBlockSize]byte{
	0xab, 0xcd, 0xef, 0x12, 0x34, 0x56, 0x78, 0x90,
	0xab, 0xcd, 0xef, 0x12, 0x34, 0x56, 0x78, 0x90,
	0xab, 0xcd, 0xef, 0x12, 0x34, 0x56, 0x78, 0x90,
	0xab, 0xcd, 0xef, 0x12, 0x34, 0x56, 0x78, 0x90,
}

// Encrypt transforms b in place: the logical content is zero-padded to
// the suite's IV length and encrypted block-by-block (or through the
// keystream for stream suites). On return b's length is the ciphertext
// length. The key must be exactly suite.KeySize bytes.
func Encrypt(suite *ciphers.Suite, key []byte, b *Buffer) error {
	return transform(suite, key, b, true)
}

// Decrypt is the mirror of Encrypt. The same defensive padding step is
// applied to the ciphertext length first; it is a no-op for ciphertext
// produced by Encrypt, which is always aligned.
func Decrypt(suite *ciphers.Suite, key []byte, b *Buffer) error {
	return transform(suite, key, b, false)
}

func transform(suite *ciphers.Suite, key []byte, b *Buffer, encrypt bool) error {
	if len(key) != suite.KeySize {
		return ciphers.KeySizeError(suite.KeySize)
	}

	ivLen := IVLen(suite)
	iv := make([]byte, ivLen)
	copy(iv, ivSeed[:])

	if err := b.pad(ivLen); err != nil {
		return err
	}

	data := b.data[:b.n]
	switch {
	case suite.NewBlock != nil:
		block, err := suite.NewBlock(key)
		if err != nil {
			return fmt.Errorf("initializing %s: %w", suite.Name, err)
		}
		if encrypt {
			cipher.NewCBCEncrypter(block, iv).CryptBlocks(data, data)
		} else {
			cipher.NewCBCDecrypter(block, iv).CryptBlocks(data, data)
		}
	case suite.NewStream != nil:
		// Stream suites ignore the IV; a fresh keystream is symmetric in
		// both directions.
		stream, err := suite.NewStream(key)
		if err != nil {
			return fmt.Errorf("initializing %s: %w", suite.Name, err)
		}
		stream.XORKeyStream(data, data)
	default:
		return fmt.Errorf("suite %s has no transform", suite.Name)
	}
	return nil
}
