package engine

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/searchviz/bfs"
	"github.com/katalvlaran/searchviz/core"
	"github.com/katalvlaran/searchviz/dfs"
	"github.com/katalvlaran/searchviz/event"
	"github.com/katalvlaran/searchviz/grid"
	"github.com/katalvlaran/searchviz/heuristic"
	"github.com/katalvlaran/searchviz/pathfind"
)

// ErrUnknownTraversal is returned for a TraversalAlgorithm outside the enum.
var ErrUnknownTraversal = errors.New("engine: unknown traversal algorithm")

// TraversalAlgorithm selects a graph traversal.
type TraversalAlgorithm int

const (
	BFS TraversalAlgorithm = iota
	DFS
)

// String returns "bfs" or "dfs".
func (t TraversalAlgorithm) String() string {
	switch t {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}

	return fmt.Sprintf("traversal(%d)", int(t))
}

// ParseTraversal maps "bfs" / "dfs" (any case) to a TraversalAlgorithm.
func ParseTraversal(name string) (TraversalAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTraversal, name)
}

// Engine runs searches and logs their lifecycle.
type Engine struct {
	log *zap.Logger
}

// New returns an Engine logging to log; a nil logger disables logging.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{log: log.Named("engine")}
}

// BuildGraph returns an empty graph configured by opts.
func (e *Engine) BuildGraph(opts ...core.GraphOption) *core.Graph {
	g := core.NewGraph(opts...)
	e.log.Debug("graph created", zap.Bool("directed", g.Directed()))

	return g
}

// BuildGrid returns a rows×cols grid with the given endpoints.
func (e *Engine) BuildGrid(rows, cols int, start, end grid.Position) (*grid.Grid, error) {
	g, err := grid.New(rows, cols, grid.WithStart(start), grid.WithEnd(end))
	if err != nil {
		e.log.Warn("grid rejected",
			zap.Int("rows", rows), zap.Int("cols", cols),
			zap.Stringer("start", start), zap.Stringer("end", end),
			zap.Error(err))

		return nil, err
	}
	e.log.Debug("grid created", zap.Int("rows", rows), zap.Int("cols", cols))

	return g, nil
}

// Traverse starts alg on g from start; a non-nil end requests a target.
func (e *Engine) Traverse(g *core.Graph, alg TraversalAlgorithm, start core.NodeID, end *core.NodeID) (event.Sequence[core.NodeID], error) {
	var (
		seq event.Sequence[core.NodeID]
		err error
	)
	switch alg {
	case BFS:
		var opts []bfs.Option
		if end != nil {
			opts = append(opts, bfs.WithTarget(*end))
		}
		seq, err = bfs.Traverse(g, start, opts...)
	case DFS:
		var opts []dfs.Option
		if end != nil {
			opts = append(opts, dfs.WithTarget(*end))
		}
		seq, err = dfs.Traverse(g, start, opts...)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownTraversal, alg)
	}
	if err != nil {
		e.log.Warn("traversal rejected", zap.Stringer("algorithm", alg), zap.Stringer("start", start), zap.Error(err))
		return nil, err
	}
	e.log.Debug("traversal started", zap.Stringer("algorithm", alg), zap.Stringer("start", start))

	return observe(e.log.With(zap.Stringer("algorithm", alg)), seq, traversalEnd), nil
}

// FindPath starts alg with heuristic h on g.
func (e *Engine) FindPath(g *grid.Grid, alg pathfind.Algorithm, h heuristic.Kind, opts ...pathfind.Option) (event.Sequence[grid.Position], error) {
	seq, err := pathfind.Find(g, alg, h, opts...)
	if err != nil {
		e.log.Warn("search rejected", zap.Stringer("algorithm", alg), zap.Stringer("heuristic", h), zap.Error(err))
		return nil, err
	}
	e.log.Debug("search started", zap.Stringer("algorithm", alg), zap.Stringer("heuristic", h))

	return observe(e.log.With(zap.Stringer("algorithm", alg)), seq, searchEnd), nil
}

// traversalEnd matches the kinds that close a graph traversal.
func traversalEnd(k event.Kind) bool { return k.Terminal() && k != event.Finished }

// searchEnd matches the kind that closes a grid search.
func searchEnd(k event.Kind) bool { return k == event.Finished }

// observe passes seq through unchanged and logs the event matched by isEnd.
func observe[T any](log *zap.Logger, seq event.Sequence[T], isEnd func(event.Kind) bool) event.Sequence[T] {
	return func(yield func(event.Event[T]) bool) {
		visits := 0
		for ev := range seq {
			if ev.Kind == event.Visit {
				visits++
			}
			if isEnd(ev.Kind) {
				if ev.Summary != nil {
					logSummary(log, ev.Summary)
				} else {
					log.Info("traversal finished", zap.Stringer("outcome", ev.Kind), zap.Int("visited", visits))
				}
			}
			if !yield(ev) {
				log.Debug("consumer stopped", zap.Int("visited", visits))
				return
			}
		}
	}
}

func logSummary(log *zap.Logger, s *event.Summary) {
	log.Info("search finished",
		zap.Bool("found", s.Found),
		zap.Bool("optimal", s.Optimal),
		zap.Int("visited", s.Visited),
		zap.Int("path_length", s.PathLength),
		zap.Int("cost", s.Cost),
		zap.Duration("elapsed", s.Elapsed),
	)
}
