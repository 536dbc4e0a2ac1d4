package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"shroud/internal/crypto"
)

func keygenCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive and print the datagram key for the passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := wire(newConfig())
			if err != nil {
				return err
			}
			defer a.Wipe()

			fmt.Printf("cipher:      %s\n", a.Suite.Name)
			fmt.Printf("fingerprint: %s\n", crypto.Fingerprint(a.Key))
			if show {
				fmt.Printf("key:         %s\n", hex.EncodeToString(a.Key))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the raw key material, not just its fingerprint")

	return cmd
}
