package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// rootOptions carries dependencies shared by every subcommand.
type rootOptions struct {
	// interactive reports whether a full-screen TUI can be started.
	interactive func() bool
}

// NewRootCmd creates the root Cobra command for the holocron CLI.
// Without a subcommand it opens the interactive search screen when attached
// to a terminal and prints usage otherwise.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithTerminal(ver, func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	})
}

// NewRootCmdWithTerminal creates the root command with an explicit terminal
// check for testability.
func NewRootCmdWithTerminal(ver string, interactive func() bool) *cobra.Command {
	var logResult *logging.LogPathResult
	opts := &rootOptions{interactive: interactive}

	cmd := &cobra.Command{
		Use:     "holocron",
		Short:   "Search the Star Wars archives",
		Long:    "Holocron: search Star Wars characters from SWAPI in the terminal",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, usesTUI(cmd, args, opts))
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.interactive() {
				return cmd.Help()
			}
			return runBrowse(cmd, "", 0)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.holocron/config.yaml)")
	cmd.PersistentFlags().String("base-url", "", "SWAPI base URL (overrides config and env)")
	cmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (overrides config and env)")

	cmd.AddCommand(
		newSearchCmd(),
		newBrowseCmd(opts),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig resolves the configuration for this invocation and installs it
// globally. CLI flags override file and environment values.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.InitGlobalConfig(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("base-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("base-url")
	}
	if cmd.Flags().Changed("timeout") {
		var timeout time.Duration
		timeout, _ = cmd.Flags().GetDuration("timeout")
		cfg.API.Timeout = timeout
	}
	return nil
}

// usesTUI reports whether this invocation takes over the terminal.
func usesTUI(cmd *cobra.Command, args []string, opts *rootOptions) bool {
	switch {
	case cmd.Name() == "browse":
		return true
	case !cmd.HasParent() && len(args) == 0:
		return opts.interactive()
	default:
		return false
	}
}

const rootCmdExample = `  # Open the interactive search screen
  holocron

  # Open it with a query already submitted
  holocron browse skywalker

  # Print one page of results as a table
  holocron search luke

  # Second page, 50 per page, as JSON
  holocron search a --page 2 --page-size 50 --output json

  # Point at a SWAPI mirror
  holocron search leia --base-url https://swapi.py4e.com/api

  # Initialize and edit configuration
  holocron config init
  holocron config set output.default_format yaml`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		newConfigInitCmd(), newConfigSetCmd(), newConfigGetCmd(),
		newConfigListCmd(), newConfigValidateCmd(),
	)
	return cmd
}
