package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/searchviz/heuristic"
	"github.com/katalvlaran/searchviz/pathfind"
)

func (a *app) runCompare(ctx context.Context) error {
	g, err := a.buildGrid(a.cfg.Grid)
	if err != nil {
		return err
	}
	h, err := heuristic.Parse(a.cfg.Search.Heuristic)
	if err != nil {
		return err
	}

	sums, err := a.engine.Compare(ctx, g, pathfind.Algorithms(), h)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tOPTIMAL\tVISITED\tLENGTH\tCOST\tTIME")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%t\t%t\t%d\t%d\t%d\t%s\n",
			s.Algorithm, s.Found, s.Optimal, s.Visited, s.PathLength, s.Cost, s.Elapsed)
	}

	return tw.Flush()
}
