package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/logging"
	"github.com/rshade/holocron/internal/roster"
	"github.com/rshade/holocron/internal/swapi"
)

// ExitError carries a process exit code out of a command. Error returns the
// user-facing message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// newSearcher builds a Searcher from the global configuration after
// validating it.
func newSearcher(cmd *cobra.Command) (*roster.Searcher, *config.Config, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := *logging.FromContext(cmd.Context())
	client := swapi.NewClient(
		swapi.WithBaseURL(cfg.API.BaseURL),
		swapi.WithTimeout(cfg.API.Timeout),
		swapi.WithUserAgent(cfg.API.UserAgent),
		swapi.WithLogger(log),
	)
	return roster.NewSearcher(client, roster.WithSearchLogger(log)), cfg, nil
}

// pageSizeFlag returns --page-size when set, otherwise the configured
// default.
func pageSizeFlag(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("page-size") {
		size, _ := cmd.Flags().GetInt("page-size")
		return size
	}
	return cfg.Search.DefaultPageSize
}
