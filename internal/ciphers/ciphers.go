package ciphers

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/rc4"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
)

const (
	// MaxKeySize is the largest key any registered suite may use.
	MaxKeySize = 32
	// MaxBlockSize is the largest block any registered suite may use.
	MaxBlockSize = 32
)

// ErrUnknownCipher is returned by Lookup for a name that is not in the
// table. Callers must treat it as a fatal configuration error; there is
// no fallback suite.
var ErrUnknownCipher = errors.New("unknown cipher")

// KeySizeError reports a key whose length does not match the suite.
type KeySizeError int

func (e KeySizeError) Error() string {
	return "key size error: need " + strconv.Itoa(int(e)) + " bytes"
}

// Suite describes one named cipher: its key and block sizes plus a
// constructor for the primitive. Exactly one of NewBlock and NewStream is
// set; BlockSize is 0 for stream suites.
type Suite struct {
	Name      string
	KeySize   int
	BlockSize int

	NewBlock  func(key []byte) (cipher.Block, error)
	NewStream func(key []byte) (cipher.Stream, error)
}

var registry = make(map[string]*Suite)

// register validates a suite against the platform maxima and adds it to
// the table. Oversized suites are a programming defect, so this panics
// rather than returning an error.
func register(s *Suite) {
	if s.KeySize > MaxKeySize {
		panic(fmt.Sprintf("ciphers: %s key size %d exceeds %d", s.Name, s.KeySize, MaxKeySize))
	}
	if s.BlockSize > MaxBlockSize {
		panic(fmt.Sprintf("ciphers: %s block size %d exceeds %d", s.Name, s.BlockSize, MaxBlockSize))
	}
	registry[strings.ToLower(s.Name)] = s
}

func init() {
	register(&Suite{Name: "aes-128", KeySize: 16, BlockSize: aes.BlockSize, NewBlock: aes.NewCipher})
	register(&Suite{Name: "aes-256", KeySize: 32, BlockSize: aes.BlockSize, NewBlock: aes.NewCipher})
	register(&Suite{Name: "des", KeySize: 8, BlockSize: des.BlockSize, NewBlock: des.NewCipher})
	register(&Suite{Name: "desx", KeySize: 24, BlockSize: des.BlockSize, NewBlock: newDESX})
	register(&Suite{Name: "blowfish", KeySize: 16, BlockSize: blowfish.BlockSize, NewBlock: func(key []byte) (cipher.Block, error) {
		return blowfish.NewCipher(key)
	}})
	register(&Suite{Name: "cast5", KeySize: 16, BlockSize: cast5.BlockSize, NewBlock: func(key []byte) (cipher.Block, error) {
		return cast5.NewCipher(key)
	}})
	register(&Suite{Name: "rc4", KeySize: 16, NewStream: func(key []byte) (cipher.Stream, error) {
		return rc4.NewCipher(key)
	}})
}

// Lookup resolves a suite by name, case-insensitively.
func Lookup(name string) (*Suite, error) {
	s, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
	return s, nil
}

// List returns the registered suite names in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
