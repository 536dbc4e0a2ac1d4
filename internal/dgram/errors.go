package dgram

import "errors"

var (
	// ErrShortBuffer is returned when zero-padding would grow a datagram
	// past its buffer capacity.
	ErrShortBuffer = errors.New("datagram buffer too small for block padding")
)
