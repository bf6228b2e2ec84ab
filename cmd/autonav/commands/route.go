package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/autonav/navigation"
	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two waypoints",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.nav.Route(navigation.NodeID(args[0]), navigation.NodeID(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatRoute(r))

			return nil
		},
	}
}

// formatRoute renders "a -> b -> c (7)".
func formatRoute(r navigation.Route) string {
	ids := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		ids[i] = string(n.ID)
	}

	return fmt.Sprintf("%s (%g)", strings.Join(ids, " -> "), r.Distance)
}
