// Package dgram encrypts and decrypts single datagrams in place.
//
// A datagram is a caller-owned Buffer: a fixed-capacity byte slice plus a
// logical length. Encrypt zero-pads the logical content up to the suite's
// block size (within the buffer's capacity), then runs the transform over
// the padded length with a fixed, publicly-known IV. Decrypt mirrors the
// same steps; the zero padding is observable after decryption and is not
// stripped.
//
// The fixed IV is reused for every datagram. That is a deliberate,
// wire-compatible simplification of the original scheme, not a
// recommendation: identical plaintext prefixes under the same key produce
// identical ciphertext prefixes across datagrams.
package dgram
