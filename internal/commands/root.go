package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alvazi-dev/microgl/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "microgl",
		Short:   "Bank transaction exports to general ledger postings",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	defaultConfig := os.Getenv("MICROGL_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "microgl.yaml"
	}
	rootCmd.PersistentFlags().String("config", defaultConfig, "path to the microgl.yaml configuration file")

	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newResetCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

func configPath(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("config")
}
