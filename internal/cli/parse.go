package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylograph/phylograph/pkg/pipeline"
	"github.com/phylograph/phylograph/pkg/tree"
)

// parseCommand creates the parse command for converting Newick into tree JSON.
func (c *CLI) parseCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "parse <newick-or-file>",
		Short: "Parse Newick data into a tree JSON file",
		Long: `Parse Newick data into a tree JSON file.

The argument may be a Newick string, a file containing one, or "-" to read
from stdin.

Examples:
  phylograph parse "((A:0.1,B:0.2):0.05,C:0.3);"
  phylograph parse primates.nwk -o primates.json
  cat primates.nwk | phylograph parse -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args[0], output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache")

	return cmd
}

// runParse parses the input and writes the tree as JSON.
func (c *CLI) runParse(ctx context.Context, input, output string, noCache, refresh bool) error {
	newickText, err := readNewick(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	root, err := runner.Parse(ctx, pipeline.Options{
		Newick:  newickText,
		Refresh: refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d nodes with %d leaves", root.Count(), root.Leaves()))

	return writeTree(root, output, c.Logger)
}

// writeTree serializes the tree as JSON to path (or stdout if empty).
func writeTree(root *tree.Node, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := tree.Write(root, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote tree to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when the
// path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
