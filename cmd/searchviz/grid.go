package main

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/searchviz/config"
	"github.com/katalvlaran/searchviz/event"
	"github.com/katalvlaran/searchviz/grid"
	"github.com/katalvlaran/searchviz/heuristic"
	"github.com/katalvlaran/searchviz/pathfind"
)

// buildGrid creates the configured board with its walls and weights.
func (a *app) buildGrid(gc config.GridConfig) (*grid.Grid, error) {
	g, err := a.engine.BuildGrid(gc.Rows, gc.Cols,
		grid.Position{Row: gc.StartRow, Col: gc.StartCol},
		grid.Position{Row: gc.EndRow, Col: gc.EndCol})
	if err != nil {
		return nil, err
	}
	for _, w := range gc.Walls {
		if _, err := g.SetWall(grid.Position{Row: w.Row, Col: w.Col}, true); err != nil {
			return nil, err
		}
	}
	for _, w := range gc.Weights {
		weight := w.Weight
		if weight == 0 {
			weight = gc.CustomWeight
		}
		if _, err := g.SetWeight(grid.Position{Row: w.Row, Col: w.Col}, weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// searchKinds parses the configured algorithm and heuristic.
func searchKinds(sc config.SearchConfig) (pathfind.Algorithm, heuristic.Kind, error) {
	alg, err := pathfind.ParseAlgorithm(sc.Algorithm)
	if err != nil {
		return 0, 0, err
	}
	h, err := heuristic.Parse(sc.Heuristic)
	if err != nil {
		return 0, 0, err
	}

	return alg, h, nil
}

// newPacer returns a limiter releasing sps events per second, or nil when
// pacing is disabled.
func newPacer(sps float64) *rate.Limiter {
	if sps <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(sps), 1)
}

// paced reports whether an event kind is animated one step at a time.
func paced(k event.Kind) bool { return k == event.Visit || k == event.PathStep }

func (a *app) runGrid(ctx context.Context) error {
	g, err := a.buildGrid(a.cfg.Grid)
	if err != nil {
		return err
	}
	alg, h, err := searchKinds(a.cfg.Search)
	if err != nil {
		return err
	}
	var opts []pathfind.Option
	if a.cfg.Search.Discovery {
		opts = append(opts, pathfind.WithDiscoveryEvents())
	}

	seq, err := a.engine.FindPath(g, alg, h, opts...)
	if err != nil {
		return err
	}

	pacer := newPacer(a.cfg.Display.StepsPerSecond)
	var path []grid.Position
	for ev := range seq {
		if pacer != nil && paced(ev.Kind) {
			if err := pacer.Wait(ctx); err != nil {
				return err
			}
		}
		switch ev.Kind {
		case event.TargetFound:
			path = ev.Path
			fmt.Fprintf(a.out, "%-12s %v cost=%d length=%d\n", ev.Kind, ev.At, ev.Cost, len(ev.Path))
		case event.PathStep, event.Discovered:
			fmt.Fprintf(a.out, "%-12s %v cost=%d\n", ev.Kind, ev.At, ev.Cost)
		case event.Finished:
			printSummary(a.out, ev.Summary)
		default:
			fmt.Fprintf(a.out, "%-12s %v\n", ev.Kind, ev.At)
		}
	}

	if a.cfg.Display.Frame {
		return renderFrame(a.out, g, path)
	}

	return nil
}

func printSummary(w io.Writer, s *event.Summary) {
	if s == nil {
		return
	}
	outcome := "no path found"
	if s.Found {
		outcome = fmt.Sprintf("path length %d, cost %d", s.PathLength, s.Cost)
	}
	fmt.Fprintf(w, "%s: nodes visited %d | %s | optimal %t | time %s\n",
		s.Algorithm, s.Visited, outcome, s.Optimal, s.Elapsed)
}
