package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shroud/internal/netutil"
)

func resolveCmd() *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "resolve host:port",
		Short: "Parse a host:port string into an IPv4 endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sep) != 1 {
				return fmt.Errorf("separator must be a single character, got %q", sep)
			}
			ep, err := netutil.ParseEndpoint(args[0], sep[0])
			if err != nil {
				return err
			}
			fmt.Println(ep)
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", ":", "host/port separator character")

	return cmd
}
