package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phylograph/phylograph/pkg/layout"
	"github.com/phylograph/phylograph/pkg/pipeline"
	"github.com/phylograph/phylograph/pkg/tree"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)
	opts := pipeline.Options{
		Direction: c.Config.Layout.Direction,
		Width:     c.Config.Layout.Width,
		Height:    c.Config.Layout.Height,
	}

	cmd := &cobra.Command{
		Use:   "layout <newick-or-file>",
		Short: "Compute a 2-D layout for a phylogenetic tree",
		Long: `Compute a 2-D layout for a phylogenetic tree.

The argument may be a Newick string, a Newick file, a tree JSON file
(produced by 'parse'), or "-" for stdin. The output is a layout.json file
that 'render' can turn into SVG, DOT, or PNG.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", opts.Direction, "layout direction: LR, RL, TB, BT")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height")

	return cmd
}

// runLayout loads the tree, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache, refresh bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Refresh = refresh

	root, err := c.loadTree(ctx, runner, input, &opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, root, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = outputBase("", input) + ".layout.json"
	}

	if err := layout.WriteFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(root.Count(), root.Leaves(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}

// loadTree resolves the layout input: tree JSON files are read directly,
// everything else goes through the Newick parser.
func (c *CLI) loadTree(ctx context.Context, runner *pipeline.Runner, input string, opts *pipeline.Options) (*tree.Node, error) {
	if strings.EqualFold(filepath.Ext(input), ".json") {
		root, err := tree.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("load tree %s: %w", input, err)
		}
		return root, nil
	}

	newickText, err := readNewick(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	opts.Newick = newickText
	return runner.Parse(ctx, *opts)
}
