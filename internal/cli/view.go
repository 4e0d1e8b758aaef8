package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/phylograph/phylograph/pkg/pipeline"
)

// viewCommand creates the view command for interactively browsing a tree.
func (c *CLI) viewCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "view <newick-or-file>",
		Short: "Browse a phylogenetic tree interactively",
		Long: `Browse a phylogenetic tree interactively in the terminal.

Internal nodes can be collapsed and expanded. If the input cannot be parsed,
the built-in sample tree is shown instead so the browser always has
something to display.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runView parses the input (falling back to the sample tree) and runs the
// browser.
func (c *CLI) runView(ctx context.Context, input string, noCache bool) error {
	logger := loggerFromContext(ctx)

	newickText, err := readNewick(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	root, _, usedFallback, err := runner.ParseWithCacheInfo(ctx, pipeline.Options{
		Newick:   newickText,
		Fallback: true,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	model := NewTreeViewModel(root, usedFallback)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
