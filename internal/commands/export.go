package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alvazi-dev/microgl/internal/config"
	"github.com/alvazi-dev/microgl/internal/export"
	"github.com/alvazi-dev/microgl/internal/ledger"
)

func newExportCommand() *cobra.Command {
	var year int
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the GL report for a posting year",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			if out == "" {
				out = cfg.Report.Path
			}
			if out == "" {
				out = fmt.Sprintf("gl-report-%d.csv", year)
			}

			store, err := ledger.Open(cfg.Ledger.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := export.WriteYear(store, year, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "posting year to export")
	cmd.Flags().StringVar(&out, "out", "", "report output path (default from config)")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
