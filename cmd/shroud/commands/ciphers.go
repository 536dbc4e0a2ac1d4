package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shroud/internal/ciphers"
)

func ciphersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ciphers",
		Short: "List the available cipher suites",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range ciphers.List() {
				s, err := ciphers.Lookup(name)
				if err != nil {
					return err
				}
				if s.BlockSize == 0 {
					fmt.Printf("%-10s key %2d bytes, stream\n", s.Name, s.KeySize)
					continue
				}
				fmt.Printf("%-10s key %2d bytes, block %2d bytes\n", s.Name, s.KeySize, s.BlockSize)
			}
			return nil
		},
	}
}
