package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alvazi-dev/microgl/internal/chart"
	"github.com/alvazi-dev/microgl/internal/config"
	"github.com/alvazi-dev/microgl/internal/ingest"
	"github.com/alvazi-dev/microgl/internal/ledger"
	"github.com/alvazi-dev/microgl/internal/logger"
)

func newProcessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Post bank export files to the general ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			accounts, err := chart.Load(cfg.ChartFile)
			if err != nil {
				return err
			}

			store, err := ledger.Open(cfg.Ledger.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			proc := ingest.NewProcessor(
				logger.New(),
				config.NewDirectory(cfg.BankAccounts),
				accounts,
				store,
				cfg.BankFilesDir,
			)
			sum, err := proc.Run()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"processed %d files (%d skipped): %d posted, %d duplicates, %d record errors\n",
				sum.FilesProcessed, sum.FilesSkipped, sum.Posted, sum.Duplicates, sum.RecordErrors)
			return nil
		},
	}
}
