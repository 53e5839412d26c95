package engine

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/searchviz/event"
	"github.com/katalvlaran/searchviz/grid"
	"github.com/katalvlaran/searchviz/heuristic"
	"github.com/katalvlaran/searchviz/pathfind"
)

// Compare runs every algorithm in algs concurrently, each on its own clone
// of g, and returns their summaries in algs order. g is only read, before
// any worker starts. The first failure or a cancelled ctx aborts the rest.
func (e *Engine) Compare(ctx context.Context, g *grid.Grid, algs []pathfind.Algorithm, h heuristic.Kind) ([]event.Summary, error) {
	if g == nil {
		return nil, pathfind.ErrGridNil
	}
	clones := make([]*grid.Grid, len(algs))
	for i := range algs {
		clones[i] = g.Clone()
	}

	out := make([]event.Summary, len(algs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		eg.Go(func() error {
			seq, err := pathfind.Find(clones[i], alg, h)
			if err != nil {
				return err
			}
			for ev := range seq {
				if err := ctx.Err(); err != nil {
					return err
				}
				if ev.Kind == event.Finished {
					out[i] = *ev.Summary
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		e.log.Warn("comparison aborted", zap.Error(err))
		return nil, err
	}
	for _, s := range out {
		e.log.Info("comparison result",
			zap.String("algorithm", s.Algorithm),
			zap.Bool("found", s.Found),
			zap.Int("visited", s.Visited),
			zap.Int("cost", s.Cost))
	}

	return out, nil
}
