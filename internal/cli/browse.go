package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/tui"
)

// ErrNotInteractive is returned by browse when no terminal is attached.
var ErrNotInteractive = errors.New("browse needs an interactive terminal; use 'holocron search' instead")

// newBrowseCmd creates the interactive search command.
func newBrowseCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [query]",
		Short: "Open the interactive search screen",
		Long: `Opens a full-screen search screen. With a query, the first search runs
immediately.

Keys: enter searches, / edits the query, esc moves to the results, ←/→ change
page, tab cycles the page size, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.interactive() {
				return ErrNotInteractive
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			size, _ := cmd.Flags().GetInt("page-size")
			return runBrowse(cmd, query, size)
		},
	}

	cmd.Flags().Int("page-size", 0, "initial display page size (default from config)")

	return cmd
}

// runBrowse runs the search screen until the user quits. A zero pageSize
// uses the configured default.
func runBrowse(cmd *cobra.Command, query string, pageSize int) error {
	searcher, cfg, err := newSearcher(cmd)
	if err != nil {
		return err
	}
	if pageSize == 0 {
		pageSize = cfg.Search.DefaultPageSize
	}
	if !pagination.IsValidPageSize(pageSize) {
		return fmt.Errorf("--page-size: %w: got %d", pagination.ErrInvalidPageSize, pageSize)
	}

	ctx := cmd.Context()
	opts := []tui.SearchOption{tui.WithPageSize(pageSize)}
	if query != "" {
		opts = append(opts, tui.WithInitialQuery(query))
	}
	model := tui.NewSearchModel(ctx, searcher.Search, opts...)

	logger.Debug().Ctx(ctx).Str("query", query).Int("page_size", pageSize).Msg("starting search screen")

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running search screen: %w", err)
	}
	return nil
}
