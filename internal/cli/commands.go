package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PoolService/internal/integrations/poolapi"
)

func newLanesCommand(newClient clientFactory) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "List lanes with occupancy and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient(cmd).ListLanes(cmd.Context(), status)
			if err != nil {
				return fmt.Errorf("list lanes: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderLanes(list.Lanes))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (available, partially_occupied, full, maintenance)")
	return cmd
}

func newStatsCommand(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show pool-wide occupancy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := newClient(cmd).Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("get stats: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderStats(stats))
			return nil
		},
	}
}

func newMaintenanceCommand(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Take a lane out of service or bring it back",
	}

	cmd.AddCommand(
		laneActionCommand("set <lane>", "Put an empty lane into maintenance", newClient,
			func(ctx context.Context, c *poolapi.Client, lane int) (*poolapi.Lane, error) {
				return c.SetMaintenance(ctx, lane)
			}),
		laneActionCommand("clear <lane>", "Return a lane from maintenance", newClient,
			func(ctx context.Context, c *poolapi.Client, lane int) (*poolapi.Lane, error) {
				return c.ClearMaintenance(ctx, lane)
			}),
	)
	return cmd
}

func newReleaseCommand(newClient clientFactory) *cobra.Command {
	return laneActionCommand("release <lane>", "Drop all reservations and the class from a lane", newClient,
		func(ctx context.Context, c *poolapi.Client, lane int) (*poolapi.Lane, error) {
			return c.ReleaseLane(ctx, lane)
		})
}

type laneAction func(ctx context.Context, c *poolapi.Client, lane int) (*poolapi.Lane, error)

func laneActionCommand(use, short string, newClient clientFactory, action laneAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseLaneArg(args[0])
			if err != nil {
				return err
			}
			lane, err := action(cmd.Context(), newClient(cmd), number)
			if err != nil {
				return fmt.Errorf("lane %d: %w", number, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderLanes([]poolapi.Lane{*lane}))
			return nil
		},
	}
}
