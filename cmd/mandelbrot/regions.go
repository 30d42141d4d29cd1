package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/viewport"
)

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the named regions accepted by --region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			p := printer()
			p.Fprintln(w, "NAME\tREAL\tIMAGINARY")
			for _, name := range viewport.RegionNames() {
				r, err := viewport.LookupRegion(name)
				if err != nil {
					return err
				}
				p.Fprintf(w, "%s\t[%g, %g]\t[%g, %g]\n", r.Name, r.Xmin, r.Xmax, r.Ymin, r.Ymax)
			}
			return w.Flush()
		},
	}
}
