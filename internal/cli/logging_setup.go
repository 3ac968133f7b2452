package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI
// flags. When tui is set and no log file is configured, logs are discarded so
// they cannot corrupt the screen.
func setupLogging(cmd *cobra.Command, tui bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !tui {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	logCfg.Caller = debug
	if tui && loggingCfg.File == "" {
		logCfg.Output = logging.OutputDiscard
	}

	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if !tui {
		if result.UsingFile && debug {
			logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
		} else if result.FallbackUsed {
			logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
		}
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}
