package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phylograph/phylograph/pkg/layout"
	"github.com/phylograph/phylograph/pkg/pipeline"
)

// renderCommand creates the render command for generating output artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		refresh    bool
	)
	opts := pipeline.Options{
		Direction: c.Config.Layout.Direction,
		Width:     c.Config.Layout.Width,
		Height:    c.Config.Layout.Height,
	}

	cmd := &cobra.Command{
		Use:   "render <newick-or-file>",
		Short: "Render a phylogenetic tree to SVG, DOT, PNG, or JSON",
		Long: `Render a phylogenetic tree to one or more output formats.

The argument may be a Newick string, a Newick file, a layout.json file
(produced by 'layout'), or "-" for stdin.

Examples:
  phylograph render "((A,B),C);" -o tree.svg
  phylograph render primates.nwk -f svg,png -d TB
  phylograph render primates.layout.json -f dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if formatsStr == "" && len(c.Config.Render.Formats) > 0 {
				opts.Formats = c.Config.Render.Formats
			}
			opts.Refresh = refresh
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", opts.Direction, "layout direction: LR, RL, TB, BT")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}

// runRender runs the pipeline and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cached, err := c.renderArtifacts(ctx, runner, input, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := outputBase(output, input)
	single := len(opts.Formats) == 1 && output != ""

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if single {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	if cached {
		printDetail("all artifacts from cache")
	}

	return nil
}

// renderArtifacts produces the artifacts, skipping the parse and layout
// stages when the input is an existing layout.json file.
func (c *CLI) renderArtifacts(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (map[string][]byte, bool, error) {
	if strings.HasSuffix(strings.ToLower(input), ".layout.json") || isLayoutFile(input) {
		l, err := layout.ReadFile(input)
		if err != nil {
			return nil, false, fmt.Errorf("load layout %s: %w", input, err)
		}
		return runner.RenderWithCacheInfo(ctx, l, opts)
	}

	newickText, err := readNewick(input)
	if err != nil {
		return nil, false, fmt.Errorf("read input: %w", err)
	}
	opts.Newick = newickText

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, false, err
	}
	return result.Artifacts, result.CacheInfo.RenderHit, nil
}

// isLayoutFile reports whether path is a JSON file that parses as a layout.
func isLayoutFile(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return false
	}
	_, err := layout.ReadFile(path)
	return err == nil
}
