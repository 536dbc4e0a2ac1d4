package dgram

// Buffer is a caller-owned datagram: a fixed-capacity backing slice and a
// logical length. The engine mutates the content and length in place but
// never grows the backing slice.
type Buffer struct {
	data []byte
	n    int
}

// NewBuffer returns an empty buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

// FromBytes copies p into a fresh buffer with headroom spare bytes of
// capacity for padding.
func FromBytes(p []byte, headroom int) *Buffer {
	b := NewBuffer(len(p) + headroom)
	copy(b.data, p)
	b.n = len(p)
	return b
}

// Len reports the logical length.
func (b *Buffer) Len() int { return b.n }

// Cap reports the buffer capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns the logical content. The slice aliases the buffer's
// backing storage.
func (b *Buffer) Bytes() []byte { return b.data[:b.n] }

// Reset sets the logical length, keeping the backing storage and its
// current content.
func (b *Buffer) Reset(n int) error {
	if n > len(b.data) {
		return ErrShortBuffer
	}
	b.n = n
	return nil
}

// pad grows the logical length to the next multiple of align, zero-filling
// the added bytes. An already-aligned buffer is left untouched. Padding
// past capacity fails with ErrShortBuffer instead of overflowing.
func (b *Buffer) pad(align int) error {
	rem := b.n % align
	if rem == 0 {
		return nil
	}
	padded := b.n + align - rem
	if padded > len(b.data) {
		return ErrShortBuffer
	}
	for i := b.n; i < padded; i++ {
		b.data[i] = 0
	}
	b.n = padded
	return nil
}
