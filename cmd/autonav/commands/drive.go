package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/autonav/motion"
	"github.com/katalvlaran/autonav/navigation"
	"github.com/spf13/cobra"
)

func newDriveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drive FROM TO",
		Short: "Dry-run a route on a recording motion driver",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.nav.Route(navigation.NodeID(args[0]), navigation.NodeID(args[1]))
			if err != nil {
				return err
			}
			plan, err := legs(a.nav, r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatRoute(r))

			rec := motion.NewRecorder(false)
			noWait := func(context.Context, time.Duration) error { return nil }
			err = motion.Drive(cmd.Context(), rec, plan,
				motion.WithCruise(a.v.GetFloat64("cruise")),
				motion.WithSpeed(a.v.GetFloat64("speed")),
				motion.WithHold(noWait),
				motion.WithDriveLogger(a.log.WithName("motion")),
			)
			if err != nil {
				return err
			}

			events := rec.Events()
			for i, e := range events {
				if i < len(plan) {
					fmt.Fprintf(out, "%s\t# %s -> %s (%g)\n", e, plan[i].From, plan[i].To, plan[i].Distance)
					continue
				}
				fmt.Fprintln(out, e)
			}

			return nil
		},
	}
	cmd.Flags().Float64("cruise", 0.5, "forward power per leg, (0, 1]")
	cmd.Flags().Float64("speed", 1, "distance units per second at cruise power")

	return cmd
}

// legs splits a route into hops, each weighted by its shortest distance.
func legs(nav *navigation.Navigation, r navigation.Route) ([]motion.Leg, error) {
	if len(r.Nodes) < 2 {
		return nil, nil
	}
	out := make([]motion.Leg, 0, len(r.Nodes)-1)
	for i := 0; i+1 < len(r.Nodes); i++ {
		from, to := r.Nodes[i], r.Nodes[i+1]
		d, err := nav.Distance(from.Index, to.Index)
		if err != nil {
			return nil, err
		}
		out = append(out, motion.Leg{From: string(from.ID), To: string(to.ID), Distance: d})
	}

	return out, nil
}
