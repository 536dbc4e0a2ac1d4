// Package ciphers holds the static table of symmetric cipher suites
// available for datagram encryption.
//
// Each suite pairs a human-readable name with its key and block sizes and
// a constructor for the underlying primitive. Block suites run in CBC
// mode; stream suites (block size 0) apply a raw keystream. The table is
// populated once at init and read-only afterwards, so lookups need no
// locking.
package ciphers
