// Command searchviz drives the search engine from a terminal.
//
//	searchviz grid    [flags]   run one grid algorithm and print its events
//	searchviz graph   [flags]   run BFS or DFS over a graph
//	searchviz compare [flags]   run every grid algorithm on the same board
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/searchviz/config"
	"github.com/katalvlaran/searchviz/engine"
	"github.com/katalvlaran/searchviz/logger"
)

var errUsage = errors.New("usage: searchviz grid|graph|compare [flags]")

// app carries what every subcommand needs.
type app struct {
	engine   *engine.Engine
	cfg      *config.Config
	out      io.Writer
	fromGrid bool
}

var commands = map[string]func(*app, context.Context) error{
	"grid":    (*app).runGrid,
	"graph":   (*app).runGraph,
	"compare": (*app).runCompare,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "searchviz:", err)
		os.Exit(1)
	}
}

// run parses args, loads the configuration and dispatches to a subcommand.
func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.StringP("config", "c", "", "config file (yaml or json)")
	fromGrid := fs.Bool("from-grid", false, "graph: traverse the configured grid instead of the configured graph")
	config.Flags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath, fs)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Debug("configuration loaded", zap.String("command", args[0]), zap.String("file", *cfgPath))

	a := &app{
		engine:   engine.New(log),
		cfg:      cfg,
		out:      out,
		fromGrid: *fromGrid,
	}

	return cmd(a, ctx)
}
