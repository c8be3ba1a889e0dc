package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres/weather"
)

func newPruneWeatherCmd(c *cli) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune-weather",
		Short: "Delete cached weather snapshots that have not been refreshed recently",
		Long: `Delete weather snapshots whose last refresh is older than --older-than.
Intended for an external cron job; the server re-fetches pruned locations on demand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			pool, err := postgres.NewPool(ctx, c.cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			threshold := time.Now().Add(-olderThan)
			deleted, err := weather.New(pool).DeleteOlderThan(ctx, threshold)
			if err != nil {
				c.logger.Error("prune weather failed",
					slog.String("error", err.Error()),
					slog.Time("threshold", threshold),
				)
				return err
			}

			c.logger.Info("prune weather completed",
				slog.Int64("deleted", deleted),
				slog.Time("threshold", threshold),
			)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 7*24*time.Hour, "Age threshold")
	return cmd
}
