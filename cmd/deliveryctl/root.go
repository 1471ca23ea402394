package main

import (
	"deliveryform/config"
	"deliveryform/shared/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "deliveryctl",
		Short:         "Operations for the delivery form backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cfg := config.Get()

			logger.InitLogger(cfg.Server.Env)

			logger.SetLogLevel(cfg)
		},
	}

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newManifestCmd())

	return root
}
