package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"shroud/internal/app"
	"shroud/internal/ciphers"
	"shroud/internal/config"
	"shroud/internal/crypto"
)

var (
	cipherName string
	passphrase string
	parallel   int
	suffix     string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "shroud",
		Short:        "Symmetric datagram encryption toolkit",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&cipherName, "cipher", "c", "aes-128",
		"cipher suite: "+strings.Join(ciphers.List(), " "))
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "",
		"pre-shared passphrase the key is derived from")
	root.PersistentFlags().IntVarP(&parallel, "parallel", "j", runtime.NumCPU(),
		"number of parallel workers")
	root.PersistentFlags().StringVar(&suffix, "suffix", ".sealed",
		"suffix appended to sealed files and stripped when opening")

	root.AddCommand(ciphersCmd(), keygenCmd(), sealCmd(), openCmd(), benchCmd(), resolveCmd())
	return root.Execute()
}

// newConfig snapshots the persistent flags into a config value.
func newConfig() config.Config {
	return config.Config{
		Cipher:     cipherName,
		Passphrase: passphrase,
		Parallel:   parallel,
		Suffix:     suffix,
	}
}

// wire validates cfg, resolves the suite from the registry and stretches
// the passphrase into a key of the suite's size. Callers own the returned
// app and should Wipe it when done.
func wire(cfg config.Config) (*app.App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	suite, err := ciphers.Lookup(cfg.Cipher)
	if err != nil {
		return nil, err
	}
	key := crypto.Stretch(cfg.Passphrase, suite.KeySize)
	return app.New(suite, key), nil
}
