package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/autonav/navigation"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Cross-check the route tables and report disconnected waypoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			comps, err := a.nav.Components()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "components: %d\n", len(comps))
			if len(comps) > 1 {
				for _, c := range comps {
					fmt.Fprintf(out, "  [%s]\n", joinIDs(c))
				}
			}

			if err = a.nav.Verify(); err != nil {
				return err
			}
			fmt.Fprintf(out, "routes: ok (%d waypoints)\n", a.nav.Len())

			return nil
		},
	}
}

func joinIDs(ids []navigation.NodeID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}

	return strings.Join(s, " ")
}
