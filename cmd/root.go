package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/config"
	"github.com/masmgr/commitgraph-go/internal/graph"
	"github.com/masmgr/commitgraph-go/internal/history"
	"github.com/masmgr/commitgraph-go/internal/render"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "commitgraph",
		Usage:     "Render a Git repository's commit graph as a PlantUML diagram",
		Version:   "1.0.0",
		ArgsUsage: "[repository path]",
		Commands: []*cli.Command{
			GraphCmd(),
			StatsCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (.json, .yaml)",
			},
		}, graphFlags()...),
		Action: defaultAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Revision to start from (default: HEAD)",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "Walk every branch, tag and remote ref",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns selecting refs with --all (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns rejecting refs with --all (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (git, go-git)",
		},
		&cli.BoolFlag{
			Name:  "two-pass",
			Usage: "Query identifiers and ancestry separately (git backend)",
		},
		&cli.IntFlag{
			Name:  "timeout",
			Usage: "History query timeout in seconds (0 disables)",
		},
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.NArg() > 0 {
		cfg.History.RepoPath = c.Args().First()
	}
	if c.IsSet("repo") {
		cfg.History.RepoPath = c.String("repo")
	}
	if c.IsSet("branch") {
		cfg.History.Branch = c.String("branch")
	}
	if c.IsSet("all") {
		cfg.History.All = c.Bool("all")
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.History.Refs.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.History.Refs.Exclude = excludes
	}
	if c.IsSet("backend") {
		cfg.History.Backend = c.String("backend")
	}
	if c.IsSet("two-pass") {
		cfg.History.TwoPass = c.Bool("two-pass")
	}
	if c.IsSet("timeout") {
		cfg.History.TimeoutSeconds = c.Int("timeout")
	}

	return cfg, nil
}

// historyOptions converts history configuration into source options.
func historyOptions(cfg config.HistoryConfig) history.Options {
	return history.Options{
		RepoPath: cfg.RepoPath,
		Branch:   cfg.Branch,
		All:      cfg.All,
		Include:  cfg.Refs.Include,
		Exclude:  cfg.Refs.Exclude,
		Combined: !cfg.TwoPass,
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// defaultAction handles the root command.
// When a repository path is provided as an argument, it runs the graph command.
func defaultAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return graphAction(c)
}

// describeError turns pipeline failures into a user-facing message.
func describeError(err error) string {
	var (
		qe      *history.QueryError
		unknown *graph.UnknownCommitError
		rerr    *render.Error
	)
	switch {
	case errors.Is(err, history.ErrNotRepository):
		return fmt.Sprintf("%v (run from or point --repo at the root of a Git repository)", err)
	case errors.As(err, &unknown):
		return fmt.Sprintf("history changed while it was read or is inconsistent: %v", unknown)
	case errors.As(err, &qe):
		return fmt.Sprintf("could not read history: %v", qe)
	case errors.As(err, &rerr):
		return fmt.Sprintf("PlantUML failed: %v", rerr)
	default:
		return err.Error()
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		os.Exit(1)
	}
}
