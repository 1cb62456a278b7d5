package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/config"
	"github.com/masmgr/commitgraph-go/internal/diagram"
	"github.com/masmgr/commitgraph-go/internal/output"
	"github.com/masmgr/commitgraph-go/internal/render"
)

// graphFlags are the graph command's flags. The root command carries them
// too so that "commitgraph [flags] <repo>" accepts the same options.
func graphFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (plantuml, dot, json, csv)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "render",
			Usage: "Run PlantUML on the output file",
		},
		&cli.StringFlag{
			Name:  "plantuml-jar",
			Usage: "Path to plantuml.jar",
		},
		&cli.StringFlag{
			Name:  "java",
			Usage: "Java executable used to run PlantUML",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Do not echo the diagram when writing to a file",
		},
	)
}

// GraphCmd returns the graph command.
func GraphCmd() *cli.Command {
	return &cli.Command{
		Name:      "graph",
		Aliases:   []string{"g"},
		Usage:     "Write the commit graph as diagram text",
		ArgsUsage: "[repository path]",
		Flags:     graphFlags(),
		Action:    graphAction,
	}
}

func graphAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	applyGraphFlags(c, ctx.Config)

	return writeGraph(c.Context, ctx, c.Bool("quiet"))
}

// applyGraphFlags overrides output and render settings from CLI flags.
func applyGraphFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Output.Path = c.String("output")
	}
	if c.IsSet("render") {
		cfg.Render.Enabled = c.Bool("render")
	}
	if c.IsSet("plantuml-jar") {
		cfg.Render.PlantUMLJar = c.String("plantuml-jar")
	}
	if c.IsSet("java") {
		cfg.Render.JavaPath = c.String("java")
	}
}

// writeGraph emits, delivers and optionally renders the commit graph.
func writeGraph(parent context.Context, ctx *CommandContext, quiet bool) error {
	cfg := ctx.Config

	format, err := diagram.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if cfg.Render.Enabled {
		if format != diagram.FormatPlantUML {
			return fmt.Errorf("rendering requires the plantuml format, got %s", format)
		}
		if output.IsStdout(cfg.Output.Path) {
			return fmt.Errorf("rendering requires an output file (--output)")
		}
	}

	text, err := diagram.NewEmitter(format).Emit(ctx.Graph)
	if err != nil {
		return fmt.Errorf("failed to emit diagram: %w", err)
	}

	if !ctx.HasCommits() {
		status(color.FgYellow, "No commits found in %s", cfg.History.RepoPath)
	}

	if err := output.Write(cfg.Output.Path, text); err != nil {
		return err
	}
	if !output.IsStdout(cfg.Output.Path) {
		if !quiet {
			if err := output.Write("", text); err != nil {
				return err
			}
		}
		status(color.FgGreen, "Wrote %d edges between %d commits to %s",
			len(ctx.Graph.Edges), ctx.Graph.Commits(), cfg.Output.Path)
	}

	if !cfg.Render.Enabled {
		return nil
	}

	if parent == nil {
		parent = context.Background()
	}
	renderCtx := parent
	if cfg.Render.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(parent, seconds(cfg.Render.TimeoutSeconds))
		defer cancel()
	}

	renderer := render.PlantUML{JavaPath: cfg.Render.JavaPath, JarPath: cfg.Render.PlantUMLJar}
	if err := renderer.Render(renderCtx, cfg.Output.Path); err != nil {
		return err
	}
	status(color.FgGreen, "Graph rendered next to %s", cfg.Output.Path)
	return nil
}

// status prints a colored progress line to stderr so stdout stays diagram-only.
func status(attr color.Attribute, format string, args ...interface{}) {
	color.New(attr).Fprintf(os.Stderr, format+"\n", args...)
}
