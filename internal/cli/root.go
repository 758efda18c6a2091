package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-app-info/internal/config"
	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/service"
)

const role = "appinfo"

// BuildInfo is the view of the process-wide build metadata the commands use.
type BuildInfo interface {
	service.BuildMetadata
	fmt.Stringer
	zerolog.LogObjectMarshaler
}

// environment is what every command receives once the persistent pre-run has
// finished.
type environment struct {
	cfg    *config.StructuredConfig
	info   BuildInfo
	logger *logger.Logger
}

// options lets tests replace the pieces that touch process-wide state.
type options struct {
	loadInfo  func(cfg *config.StructuredConfig, log *logger.Logger) BuildInfo
	newLogger func(cfg *config.StructuredConfig, cmd *cobra.Command) *logger.Logger
}

func defaultOptions() options {
	return options{loadInfo: loadShared, newLogger: commandLogger}
}

// commandLogger writes to stderr, except for the terminal UI which must not
// have log lines drawn over its screen.
func commandLogger(cfg *config.StructuredConfig, cmd *cobra.Command) *logger.Logger {
	if cmd.Name() == aboutCommandName {
		return logger.NewFileLogger(role, cfg.Log.Level, cfg.Log.File)
	}
	return logger.NewLogger(role, cfg.Log.Level)
}

// NewRootCommand creates the top-level command hosting every subcommand.
func NewRootCommand(ctx context.Context) *cobra.Command {
	return newRootCommand(ctx, defaultOptions())
}

func newRootCommand(ctx context.Context, opts options) *cobra.Command {
	env := &environment{}

	cmd := &cobra.Command{
		Use:           "appinfo",
		Short:         "Inspect, serve and track the build metadata of this application.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flagConfig := config.BindFlags(cmd.PersistentFlags())

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig())
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		env.cfg = cfg
		env.logger = opts.newLogger(cfg, cmd)
		env.info = opts.loadInfo(cfg, env.logger)

		env.logger.Info().Object("app", env.info).Str("command", cmd.Name()).Msg(env.info.String())
		return nil
	}

	cmd.AddCommand(
		newShowCommand(env),
		newServeCommand(ctx, env),
		newRemoteCommand(ctx, env),
		newLaunchCommand(ctx, env),
		newAboutCommand(ctx, env),
	)

	return cmd
}

// Main runs the command tree with the process arguments and exits non-zero on
// failure.
func Main(ctx context.Context) {
	if err := NewRootCommand(ctx).Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "error: %v\n", err)
}
