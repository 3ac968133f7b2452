package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/pagination"
	"github.com/rshade/holocron/internal/roster"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// newSearchCmd creates the non-interactive search command.
func newSearchCmd() *cobra.Command {
	var (
		page   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Print one page of matching characters",
		Long: `Fetches one page of characters whose name matches query and prints them
blue-eyed first (by name), then the rest by creation time.

An empty query lists everyone. --page-size only affects the page count; SWAPI
always returns up to ten people per page.`,
		Example: `  holocron search luke
  holocron search --page 3
  holocron search a --page-size 50 --output yaml`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			searcher, cfg, err := newSearcher(cmd)
			if err != nil {
				return err
			}

			format := cfg.Output.DefaultFormat
			if cmd.Flags().Changed("output") {
				format = output
			}
			if !config.IsValidFormat(format) {
				return fmt.Errorf("%w: got %q", config.ErrInvalidFormat, format)
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			res := searcher.Search(cmd.Context(), query, page, pageSizeFlag(cmd, cfg))
			if err := renderResult(cmd.OutOrStdout(), format, res); err != nil {
				return err
			}
			if res.Failed() {
				return &ExitError{Code: 1, Message: res.Message, Err: res.Err}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().Int("page-size", pagination.DefaultPageSize, "display page size used for the page count (25, 50, 100, 150)")
	cmd.Flags().StringVarP(&output, "output", "o", config.FormatTable, "output format: table, json, yaml")

	return cmd
}

// renderResult writes res in format. Failed results render nothing in table
// format; the caller reports the message.
func renderResult(w io.Writer, format string, res roster.Result) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // Conventional YAML indent.
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		if res.Failed() {
			return nil
		}
		return renderTable(w, res)
	}
}

func renderTable(w io.Writer, res roster.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, "NAME\tBIRTH YEAR\tEYE COLOR\tCREATED"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "----\t----------\t---------\t-------"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, c := range res.Characters {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.BirthYear, c.EyeColor, c.Created); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s\n", res.Summary())
	return err
}
