package commands

import (
	"github.com/spf13/cobra"
)

func sealCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "seal [flags] files...",
		Aliases: []string{"encrypt"},
		Short:   "Encrypt files, each as a single datagram",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := newConfig()
			cfg.Files = args
			return runFiles(cfg)
		},
	}
}

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "open [flags] files...",
		Aliases: []string{"decrypt"},
		Short:   "Decrypt files sealed by this tool",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := newConfig()
			cfg.Files = args
			cfg.Decrypt = true
			return runFiles(cfg)
		},
	}
}
