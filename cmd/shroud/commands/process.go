package commands

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"shroud/internal/app"
	"shroud/internal/config"
	"shroud/internal/dgram"
)

// runFiles seals or opens cfg.Files in parallel, bounded by cfg.Parallel.
// Each file is treated as one datagram: padded to the suite's block size
// and transformed in place with the shared key.
func runFiles(cfg config.Config) error {
	a, err := wire(cfg)
	if err != nil {
		return err
	}
	defer a.Wipe()

	g := new(errgroup.Group)
	g.SetLimit(cfg.Parallel)

	for _, file := range cfg.Files {
		file := file
		g.Go(func() error {
			out, err := processFile(a, cfg, file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error processing %s: %v\n", file, err)
				return fmt.Errorf("%s: %w", file, err)
			}
			fmt.Printf("%s -> %s\n", file, out)
			return nil
		})
	}
	return g.Wait()
}

func processFile(a *app.App, cfg config.Config, name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	// Headroom for the zero padding the transform may append.
	buf := dgram.FromBytes(data, dgram.IVLen(a.Suite))

	var out string
	if cfg.Decrypt {
		out = strings.TrimSuffix(name, cfg.Suffix)
		if out == name {
			return "", fmt.Errorf("missing %q suffix", cfg.Suffix)
		}
		err = dgram.Decrypt(a.Suite, a.Key, buf)
	} else {
		out = name + cfg.Suffix
		err = dgram.Encrypt(a.Suite, a.Key, buf)
	}
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return out, nil
}
