package dgram_test

import (
	"bytes"
	"testing"

	"shroud/internal/dgram"
)

func TestFromBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	buf := dgram.FromBytes(src, 5)
	src[0] = 9
	if buf.Bytes()[0] != 1 {
		t.Fatal("buffer aliases the source slice")
	}
	if buf.Len() != 3 || buf.Cap() != 8 {
		t.Fatalf("len/cap = %d/%d, want 3/8", buf.Len(), buf.Cap())
	}
}

func TestResetBounds(t *testing.T) {
	buf := dgram.NewBuffer(4)
	if err := buf.Reset(4); err != nil {
		t.Fatalf("Reset(4): %v", err)
	}
	if err := buf.Reset(5); err == nil {
		t.Fatal("Reset past capacity succeeded")
	}
	if !bytes.Equal(buf.Bytes(), make([]byte, 4)) {
		t.Fatalf("fresh buffer not zeroed: %x", buf.Bytes())
	}
}
