package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/scheduler"
	refreshUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
)

func newRefreshCmd(configPath *string) *cobra.Command {
	var (
		cleanerID int64
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Recompute precomputed next availability for one cleaner or all cleaners",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (cleanerID > 0) == all {
				return fmt.Errorf("exactly one of --cleaner-id or --all is required")
			}

			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(a.cfg.Refresh.Timeout)*time.Second)
			defer cancel()

			if all {
				refresher := scheduler.NewRefresher(a.cleanerRepo, a.refresh, scheduler.Config{
					Concurrency: a.cfg.Refresh.Concurrency,
				}, a.log)
				result, err := refresher.RunOnce(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d of %d cleaners (%d failed)\n",
					result.Refreshed, result.Total, result.Failed)
				return nil
			}

			resp, err := a.refresh.Execute(ctx, &refreshUC.Request{CleanerID: cleanerID, Source: refreshUC.SourceCLI})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleaner=%d next_available_2h=%s next_available_6h=%s\n",
				resp.CleanerID, formatOptional(resp.NextAvailability.Standard), formatOptional(resp.NextAvailability.Deep))
			return nil
		},
	}

	cmd.Flags().Int64Var(&cleanerID, "cleaner-id", 0, "cleaner id to refresh")
	cmd.Flags().BoolVar(&all, "all", false, "refresh every cleaner")

	return cmd
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format(time.RFC3339)
}
