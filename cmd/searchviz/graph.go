package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/searchviz/builder"
	"github.com/katalvlaran/searchviz/config"
	"github.com/katalvlaran/searchviz/core"
	"github.com/katalvlaran/searchviz/engine"
	"github.com/katalvlaran/searchviz/event"
)

// shapes maps GraphConfig.Shape to its builder constructor.
var shapes = map[string]func(gc config.GraphConfig) builder.Constructor{
	"lattice":  func(gc config.GraphConfig) builder.Constructor { return builder.Lattice(gc.LatticeRows, gc.LatticeCols) },
	"path":     func(gc config.GraphConfig) builder.Constructor { return builder.Path(gc.Size) },
	"cycle":    func(gc config.GraphConfig) builder.Constructor { return builder.Cycle(gc.Size) },
	"star":     func(gc config.GraphConfig) builder.Constructor { return builder.Star(gc.Size) },
	"complete": func(gc config.GraphConfig) builder.Constructor { return builder.Complete(gc.Size) },
}

// generateGraph builds the configured shape with constant or seeded random weights.
func generateGraph(gc config.GraphConfig) (*core.Graph, error) {
	shape, ok := shapes[gc.Shape]
	if !ok {
		return nil, fmt.Errorf("unknown graph shape %q", gc.Shape)
	}
	weights := builder.WithConstantWeight(gc.Weight)
	if gc.WeightSeed != 0 {
		weights = builder.WithRandomWeights(gc.WeightSeed, core.DefaultWeight, gc.Weight)
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(gc.Directed)},
		[]builder.BuilderOption{weights},
		shape(gc),
	)
}

// buildGraph creates the configured graph, or a generated one when no edges are listed.
func (a *app) buildGraph(gc config.GraphConfig) (*core.Graph, error) {
	if len(gc.Edges) == 0 {
		return generateGraph(gc)
	}

	g := a.engine.BuildGraph(core.WithDirected(gc.Directed))
	n := gc.Nodes
	for _, e := range gc.Edges {
		n = max(n, e.From, e.To)
	}
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for _, e := range gc.Edges {
		w := e.Weight
		if w == 0 {
			w = core.DefaultWeight
		}
		if err := g.AddEdge(core.NodeID(e.From), core.NodeID(e.To), w); err != nil {
			return nil, fmt.Errorf("edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// gridGraph exports the configured board as a graph and maps its endpoints.
func (a *app) gridGraph() (g *core.Graph, start, end core.NodeID, err error) {
	board, err := a.buildGrid(a.cfg.Grid)
	if err != nil {
		return nil, 0, 0, err
	}
	g, ids := board.ToGraph()

	return g, ids[board.StartIndex()], ids[board.EndIndex()], nil
}

func (a *app) runGraph(ctx context.Context) error {
	gc := a.cfg.Graph
	alg, err := engine.ParseTraversal(gc.Traversal)
	if err != nil {
		return err
	}

	var (
		g     *core.Graph
		start = core.NodeID(gc.Start)
		end   *core.NodeID
	)
	if a.fromGrid {
		var target core.NodeID
		g, start, target, err = a.gridGraph()
		end = &target
	} else {
		g, err = a.buildGraph(gc)
		if gc.End > 0 {
			target := core.NodeID(gc.End)
			end = &target
		}
	}
	if err != nil {
		return err
	}

	seq, err := a.engine.Traverse(g, alg, start, end)
	if err != nil {
		return err
	}
	pacer := newPacer(a.cfg.Display.StepsPerSecond)
	visited := 0
	for ev := range seq {
		if pacer != nil && ev.Kind == event.Visit {
			if err := pacer.Wait(ctx); err != nil {
				return err
			}
		}
		if ev.Kind == event.Visit {
			visited++
		}
		fmt.Fprintf(a.out, "%-12s %-8s %s\n", ev.Kind, label(g, ev.At), labels(g, ev.Path))
		if ev.Kind == event.TargetFound {
			fmt.Fprintf(a.out, "path weight %d\n", pathWeight(g, ev.Path))
		}
	}
	fmt.Fprintf(a.out, "%s: nodes visited %d\n", alg, visited)

	return nil
}

// pathWeight sums the edge weights along path, taking the first matching
// edge between consecutive nodes.
func pathWeight(g *core.Graph, path []core.NodeID) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		nbrs, err := g.Neighbors(path[i-1])
		if err != nil {
			continue
		}
		for _, n := range nbrs {
			if n.ID == path[i] {
				total += n.Weight
				break
			}
		}
	}

	return total
}

func label(g *core.Graph, id core.NodeID) string {
	if id == 0 {
		return "-"
	}
	n, err := g.Node(id)
	if err != nil {
		return id.String()
	}

	return n.Label
}

func labels(g *core.Graph, ids []core.NodeID) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = label(g, id)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
