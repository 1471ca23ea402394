package main

import (
	"deliveryform/config"
	"deliveryform/helper"
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|drop|step-up]",
		Short:     "Run PostgreSQL ledger migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp},
		RunE: func(_ *cobra.Command, args []string) error {
			if err := helper.Runner(config.Get(), args[0]); err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}

			return nil
		},
	}
}
