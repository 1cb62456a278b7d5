package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/config"
	"github.com/masmgr/commitgraph-go/internal/graph"
	"github.com/masmgr/commitgraph-go/internal/history"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands.
type CommandContext struct {
	Config  *config.Config
	History *history.History
	Graph   *graph.CommitGraph
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, reads the history and builds the commit graph.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	backend, err := history.ParseBackend(cfg.History.Backend)
	if err != nil {
		return nil, err
	}

	source, err := history.NewSource(backend, historyOptions(cfg.History))
	if err != nil {
		return nil, err
	}

	return buildContext(c.Context, cfg, source)
}

// buildContext loads history from source and builds the commit graph.
func buildContext(ctx context.Context, cfg *config.Config, source history.Source) (*CommandContext, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.History.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, seconds(cfg.History.TimeoutSeconds))
		defer cancel()
	}

	h, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	g, err := graph.Build(h)
	if err != nil {
		return nil, fmt.Errorf("failed to build commit graph: %w", err)
	}

	return &CommandContext{
		Config:  cfg,
		History: h,
		Graph:   g,
	}, nil
}

// HasCommits returns true if the history contained any commits.
func (ctx *CommandContext) HasCommits() bool {
	return ctx.Graph.Commits() > 0
}
