// Package config loads the searchviz settings from defaults, an optional
// config file, SEARCHVIZ_* environment variables and command-line flags, in
// increasing order of precedence, and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every loading and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. SEARCHVIZ_GRID_ROWS.
const EnvPrefix = "SEARCHVIZ"

// Config is the root of the settings tree.
type Config struct {
	Grid    GridConfig    `mapstructure:"grid"`
	Search  SearchConfig  `mapstructure:"search"`
	Graph   GraphConfig   `mapstructure:"graph"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// GridConfig describes the board searched by the grid algorithms.
type GridConfig struct {
	Rows     int `mapstructure:"rows" validate:"min=1,max=500"`
	Cols     int `mapstructure:"cols" validate:"min=1,max=500"`
	StartRow int `mapstructure:"start_row" validate:"min=0"`
	StartCol int `mapstructure:"start_col" validate:"min=0"`
	EndRow   int `mapstructure:"end_row" validate:"min=0"`
	EndCol   int `mapstructure:"end_col" validate:"min=0"`

	// CustomWeight is the weight applied to cells listed in Weights without
	// an explicit weight.
	CustomWeight int `mapstructure:"custom_weight" validate:"min=1"`

	Walls   []CellConfig `mapstructure:"walls" validate:"dive"`
	Weights []CellConfig `mapstructure:"weights" validate:"dive"`
}

// CellConfig addresses one cell; Weight is used by GridConfig.Weights only.
type CellConfig struct {
	Row    int `mapstructure:"row" validate:"min=0"`
	Col    int `mapstructure:"col" validate:"min=0"`
	Weight int `mapstructure:"weight" validate:"min=0"`
}

// SearchConfig selects the grid algorithm.
type SearchConfig struct {
	Algorithm string `mapstructure:"algorithm" validate:"oneof=astar dijkstra greedy hillclimb"`
	Heuristic string `mapstructure:"heuristic" validate:"oneof=manhattan euclidean chebyshev"`
	Discovery bool   `mapstructure:"discovery"`
}

// GraphConfig describes the graph handed to the traversals. With no Edges
// the CLI generates a Shape graph instead: a LatticeRows×LatticeCols lattice
// or a path, cycle, star or complete graph of Size nodes.
type GraphConfig struct {
	Directed    bool         `mapstructure:"directed"`
	Nodes       int          `mapstructure:"nodes" validate:"min=0"`
	Edges       []EdgeConfig `mapstructure:"edges" validate:"dive"`
	Traversal   string       `mapstructure:"traversal" validate:"oneof=bfs dfs"`
	Start       int          `mapstructure:"start" validate:"min=1"`
	End         int          `mapstructure:"end" validate:"min=0"` // 0 means no target
	Shape       string       `mapstructure:"shape" validate:"oneof=lattice path cycle star complete"`
	Size        int          `mapstructure:"size" validate:"min=1"`
	LatticeRows int          `mapstructure:"lattice_rows" validate:"min=1"`
	LatticeCols int          `mapstructure:"lattice_cols" validate:"min=1"`

	// Weight is the weight of every generated edge, or the upper bound of
	// the random weights drawn when WeightSeed is non-zero.
	Weight     int64  `mapstructure:"weight" validate:"min=1"`
	WeightSeed uint64 `mapstructure:"weight_seed"`
}

// EdgeConfig is one graph edge between 1-based node ids.
type EdgeConfig struct {
	From   int   `mapstructure:"from" validate:"min=1"`
	To     int   `mapstructure:"to" validate:"min=1"`
	Weight int64 `mapstructure:"weight" validate:"min=0"`
}

// DisplayConfig controls the CLI pacing and output.
type DisplayConfig struct {
	// StepsPerSecond paces Visit and PathStep events; 0 disables pacing.
	StepsPerSecond float64 `mapstructure:"steps_per_second" validate:"min=0"`
	Frame          bool    `mapstructure:"frame"`
}

// LogConfig feeds logger.New.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// setDefaults registers the built-in settings: a 20×40 board with start
// (10,5) and end (10,35), A* with Manhattan, 20 steps per second.
func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.rows", 20)
	v.SetDefault("grid.cols", 40)
	v.SetDefault("grid.start_row", 10)
	v.SetDefault("grid.start_col", 5)
	v.SetDefault("grid.end_row", 10)
	v.SetDefault("grid.end_col", 35)
	v.SetDefault("grid.custom_weight", 5)

	v.SetDefault("search.algorithm", "astar")
	v.SetDefault("search.heuristic", "manhattan")
	v.SetDefault("search.discovery", false)

	v.SetDefault("graph.directed", false)
	v.SetDefault("graph.nodes", 0)
	v.SetDefault("graph.traversal", "bfs")
	v.SetDefault("graph.start", 1)
	v.SetDefault("graph.end", 0)
	v.SetDefault("graph.shape", "lattice")
	v.SetDefault("graph.size", 8)
	v.SetDefault("graph.lattice_rows", 4)
	v.SetDefault("graph.lattice_cols", 6)
	v.SetDefault("graph.weight", 1)
	v.SetDefault("graph.weight_seed", 0)

	v.SetDefault("display.steps_per_second", 20.0)
	v.SetDefault("display.frame", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Default returns the built-in configuration, ignoring files, environment
// and flags.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// Load resolves the configuration. path may be empty; flags may be nil or
// partially populated by Flags, only registered flags are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("%w: bind --%s: %w", ErrInvalidConfig, name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
