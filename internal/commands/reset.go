package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alvazi-dev/microgl/internal/config"
	"github.com/alvazi-dev/microgl/internal/ledger"
)

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate the gl_items table for a full reprocessing run",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			store, err := ledger.Open(cfg.Ledger.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ledger %s reset\n", cfg.Ledger.Path)
			return nil
		},
	}
}
