// Package crypto exposes the key-material helpers used by shroud.
//
// Contents
//
//   - Passphrase stretching into fixed-size cipher keys (Stretch)
//   - Short key fingerprints for display/logging (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Zero)
//
// Callers should treat stretched keys as sensitive and rely on Zero when
// practical to reduce their lifetime in memory.
package crypto
