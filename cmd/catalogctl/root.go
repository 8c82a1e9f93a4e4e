package main

import (
	"github.com/spf13/cobra"

	"catalog-backend/internal/config"
	"catalog-backend/pkg/logger"
)

// cliContext carries state shared by subcommands, loaded in PersistentPreRunE
type cliContext struct {
	configDir string
	cfg       *config.Config
}

func newRootCmd() *cobra.Command {
	cli := &cliContext{}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Operate the catalog service",
		Long: `catalogctl manages the catalog database schema and mints access
tokens for the write API. Configuration is read the same way as the API:
defaults, config.yaml, then environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dirs := []string{"."}
			if cli.configDir != "" {
				dirs = []string{cli.configDir}
			}

			cfg, err := config.Load(dirs...)
			if err != nil {
				return err
			}
			logger.Init(cfg.App.Environment, cfg.Log.Level)
			cli.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cli.configDir, "config-dir", "", "directory holding config.yaml (default: current directory)")

	root.AddCommand(newSchemaCmd(cli))
	root.AddCommand(newTokenCmd(cli))
	return root
}
