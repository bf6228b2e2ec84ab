package commands

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the shortest distance between every pair of waypoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.nav.Distances()
			if err != nil {
				return err
			}
			nodes := a.nav.Nodes()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			var sb strings.Builder
			sb.WriteString("\t")
			for _, n := range nodes {
				sb.WriteString(string(n.ID))
				sb.WriteString("\t")
			}
			fmt.Fprintln(tw, sb.String())

			for y, row := range d {
				sb.Reset()
				sb.WriteString(string(nodes[y].ID))
				sb.WriteString("\t")
				for x, v := range row {
					sb.WriteString(cell(x == y, v))
					sb.WriteString("\t")
				}
				fmt.Fprintln(tw, sb.String())
			}

			return tw.Flush()
		},
	}
}

func cell(diagonal bool, v float64) string {
	switch {
	case diagonal:
		return "-"
	case math.IsInf(v, 1):
		return "inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}
