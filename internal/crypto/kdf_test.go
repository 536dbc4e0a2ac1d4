package crypto_test

import (
	"bytes"
	"crypto/md5"
	"testing"

	"shroud/internal/crypto"
)

func TestStretchMatchesDigest(t *testing.T) {
	digest := md5.Sum([]byte("secret"))
	got := crypto.Stretch("secret", md5.Size)
	if !bytes.Equal(got, digest[:]) {
		t.Fatalf("Stretch(secret, 16) = %x, want raw digest %x", got, digest)
	}
}

func TestStretchTilesDigest(t *testing.T) {
	digest := md5.Sum([]byte("secret"))
	want := bytes.Repeat(digest[:], 3)[:33]
	got := crypto.Stretch("secret", 33)
	if !bytes.Equal(got, want) {
		t.Fatalf("Stretch(secret, 33) = %x, want tiled digest %x", got, want)
	}
}

func TestStretchTruncates(t *testing.T) {
	digest := md5.Sum([]byte("secret"))
	got := crypto.Stretch("secret", 8)
	if !bytes.Equal(got, digest[:8]) {
		t.Fatalf("Stretch(secret, 8) = %x, want %x", got, digest[:8])
	}
}

func TestStretchDeterministic(t *testing.T) {
	for _, n := range []int{8, 16, 24, 32} {
		a := crypto.Stretch("correct horse battery staple", n)
		b := crypto.Stretch("correct horse battery staple", n)
		if !bytes.Equal(a, b) {
			t.Fatalf("Stretch not deterministic for n=%d: %x vs %x", n, a, b)
		}
		if len(a) != n {
			t.Fatalf("Stretch returned %d bytes, want %d", len(a), n)
		}
	}
}
