package main

import (
	"context"
	"deliveryform/di"
	"deliveryform/shared/constant"
	"deliveryform/shared/timezone"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const manifestTimeout = 2 * time.Minute

func newManifestCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Export the delivery manifest of one day to S3",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := timezone.Now()

			if date != "" {
				parsed, err := timezone.Parse(constant.DateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
				}

				day = parsed
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), manifestTimeout)
			defer cancel()

			result, err := di.InitializeManifest().Export(ctx, day)
			if err != nil {
				return fmt.Errorf("export manifest: %w", err)
			}

			if result.Count == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no deliveries on %s\n", result.Date)

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d deliveries for %s to %s\n", result.Count, result.Date, result.URL)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "delivery date as YYYY-MM-DD (defaults to today)")

	return cmd
}
