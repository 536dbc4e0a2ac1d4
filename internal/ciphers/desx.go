package ciphers

import (
	"crypto/cipher"
	"crypto/des"
)

// desx is DES with key whitening: the input block is XORed with an 8-byte
// pre-whitening key before the DES transform and the output with an
// 8-byte post-whitening key after it. The 24-byte key is laid out as
// DES key | pre-whitening | post-whitening.
type desx struct {
	block cipher.Block
	pre   [des.BlockSize]byte
	post  [des.BlockSize]byte
}

func newDESX(key []byte) (cipher.Block, error) {
	if len(key) != 24 {
		return nil, KeySizeError(24)
	}
	block, err := des.NewCipher(key[:8])
	if err != nil {
		return nil, err
	}
	c := &desx{block: block}
	copy(c.pre[:], key[8:16])
	copy(c.post[:], key[16:24])
	return c, nil
}

func (c *desx) BlockSize() int { return des.BlockSize }

func (c *desx) Encrypt(dst, src []byte) {
	var tmp [des.BlockSize]byte
	for i := range tmp {
		tmp[i] = src[i] ^ c.pre[i]
	}
	c.block.Encrypt(dst, tmp[:])
	for i := 0; i < des.BlockSize; i++ {
		dst[i] ^= c.post[i]
	}
}

func (c *desx) Decrypt(dst, src []byte) {
	var tmp [des.BlockSize]byte
	for i := range tmp {
		tmp[i] = src[i] ^ c.post[i]
	}
	c.block.Decrypt(dst, tmp[:])
	for i := 0; i < des.BlockSize; i++ {
		dst[i] ^= c.pre[i]
	}
}
