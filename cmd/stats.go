package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/commitgraph-go/internal/graph"
)

// StatsCmd returns the stats command.
func StatsCmd() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Aliases:   []string{"s"},
		Usage:     "Summarize the commit graph without writing a diagram",
		ArgsUsage: "[repository path]",
		Flags:     commonFlags(),
		Action:    statsAction,
	}
}

func statsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	printStats(ctx.Config.History.RepoPath, graph.Summarize(ctx.History, ctx.Graph))
	return nil
}

func printStats(repoPath string, s graph.Stats) {
	color.Green("Commit Graph Summary")
	fmt.Printf("Repository: %s\n\n", repoPath)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Commits\t%d\n", s.Commits)
	fmt.Fprintf(tw, "Edges\t%d\n", s.Edges)
	fmt.Fprintf(tw, "Root commits\t%d\n", s.Roots)
	fmt.Fprintf(tw, "Merge commits\t%d\n", s.Merges)
	tw.Flush()
}
