// Command gardenctl is the greenthumb admin CLI.
//
// Usage:
//
//	gardenctl migrate up
//	gardenctl migrate status
//	gardenctl token issue --user <uuid>
//	gardenctl stats --user <uuid>
//	gardenctl prune-weather --older-than 168h
//
// Configuration is loaded the same way as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/greenthumb-backend/internal/app"
	"github.com/heartmarshall/greenthumb-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cli carries state shared by subcommands after the root pre-run.
type cli struct {
	cfg     *config.Config
	logger  *slog.Logger
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "gardenctl",
		Short:        "Administer a greenthumb deployment",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 5*time.Minute, "Operation timeout")

	root.AddCommand(
		newMigrateCmd(c),
		newTokenCmd(c),
		newStatsCmd(c),
		newPruneWeatherCmd(c),
	)
	return root
}

// context returns the command context bounded by --timeout.
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

func parseUserFlag(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--user must be a UUID: %w", err)
	}
	return id, nil
}
