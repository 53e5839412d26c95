package config

import "github.com/spf13/pflag"

// flagKeys maps viper keys to the flag names registered by Flags.
var flagKeys = map[string]string{
	"grid.rows":                "rows",
	"grid.cols":                "cols",
	"grid.start_row":           "start-row",
	"grid.start_col":           "start-col",
	"grid.end_row":             "end-row",
	"grid.end_col":             "end-col",
	"search.algorithm":         "algorithm",
	"search.heuristic":         "heuristic",
	"search.discovery":         "discovery",
	"graph.directed":           "directed",
	"graph.traversal":          "traversal",
	"graph.start":              "start-node",
	"graph.end":                "end-node",
	"graph.shape":              "shape",
	"graph.size":               "size",
	"graph.weight":             "weight",
	"graph.weight_seed":        "weight-seed",
	"display.steps_per_second": "steps-per-second",
	"display.frame":            "frame",
	"log.level":                "log-level",
	"log.format":               "log-format",
}

// Flags registers the command-line overrides on fs. Defaults mirror the
// built-in configuration so an untouched flag never hides a file or env value.
func Flags(fs *pflag.FlagSet) {
	fs.Int("rows", 20, "grid rows")
	fs.Int("cols", 40, "grid columns")
	fs.Int("start-row", 10, "start cell row")
	fs.Int("start-col", 5, "start cell column")
	fs.Int("end-row", 10, "end cell row")
	fs.Int("end-col", 35, "end cell column")
	fs.StringP("algorithm", "a", "astar", "grid algorithm: astar, dijkstra, greedy, hillclimb")
	fs.String("heuristic", "manhattan", "heuristic: manhattan, euclidean, chebyshev")
	fs.Bool("discovery", false, "emit discovered events")
	fs.Bool("directed", false, "treat graph edges as directed")
	fs.StringP("traversal", "t", "bfs", "graph traversal: bfs, dfs")
	fs.Int("start-node", 1, "traversal start node id")
	fs.Int("end-node", 0, "traversal target node id, 0 for none")
	fs.String("shape", "lattice", "generated graph: lattice, path, cycle, star, complete")
	fs.Int("size", 8, "node count of a generated path, cycle, star or complete graph")
	fs.Int64("weight", 1, "generated edge weight, or the random upper bound with --weight-seed")
	fs.Uint64("weight-seed", 0, "draw generated edge weights from [1, weight] with this seed, 0 for constant")
	fs.Float64("steps-per-second", 20, "event pacing, 0 for unpaced")
	fs.Bool("frame", true, "print the final ASCII frame")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "console", "log format: json, console")
}
