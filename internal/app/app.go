// Package app bundles the cipher suite and derived key for the CLI, so
// each command works from state resolved exactly once.
package app

import (
	"shroud/internal/ciphers"
	"shroud/internal/crypto"
)

// App carries the suite resolved from the registry and the key stretched
// from the passphrase. Both are read-only for the lifetime of a command
// and safe to share across workers.
type App struct {
	Suite *ciphers.Suite
	Key   []byte
}

func New(suite *ciphers.Suite, key []byte) *App {
	return &App{Suite: suite, Key: key}
}

// Wipe zeroes the derived key. Call when the command is done with it.
func (a *App) Wipe() {
	crypto.Zero(a.Key)
}
