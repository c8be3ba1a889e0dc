package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/greenthumb-backend/internal/app"
)

func newStatsCmd(c *cli) *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print a user's dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUserFlag(user)
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			pool, err := postgres.NewPool(ctx, c.cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := app.NewDashboard(app.NewRepos(pool), clockwork.NewRealClock(), c.logger)
			stats, err := svc.StatsFor(ctx, userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total plants:      %d\n", stats.TotalPlants)
			fmt.Fprintf(out, "need water:        %d\n", stats.NeedWater)
			fmt.Fprintf(out, "care reminders:    %d\n", stats.CareReminders)
			fmt.Fprintf(out, "ai tips this week: %d\n", stats.AITipsThisWeek)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User ID (UUID)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
