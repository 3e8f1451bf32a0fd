// Package commands implements the iconpack CLI commands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/iconpack/pkg/config"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
	"github.com/Sumatoshi-tech/iconpack/pkg/version"
)

// observabilityInit matches observability.Init; tests replace it.
type observabilityInit func(observability.Config) (observability.Providers, error)

// globalOptions are the persistent root flags.
type globalOptions struct {
	configPath string
	debug      bool
	noColor    bool

	initObs observabilityInit
}

// NewRootCommand builds the iconpack command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(observability.Init)
}

func newRootCommand(initObs observabilityInit) *cobra.Command {
	opts := &globalOptions{initObs: initObs}

	root := &cobra.Command{
		Use:   "iconpack",
		Short: "Icon asset archiver and component generator",
		Long: `iconpack packs icon-set JSON bundles and standalone SVG files into
deterministic binary archives and renders icons as framework components.

Commands:
  build     Encode source directories into archives
  gen       Render one icon as a component
  inspect   Print the contents of an archive
  mcp       Serve render/inspect tools over MCP stdio`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: ./iconpack.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Debug logging and 100% trace sampling")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newBuildCommand(opts),
		newGenCommand(opts),
		newInspectCommand(opts),
		newMCPCommand(opts),
		newVersionCommand(),
	)

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "iconpack %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

// session is the per-invocation state shared by commands.
type session struct {
	cfg       *config.Config
	providers observability.Providers
	red       *observability.REDMetrics
	logger    *slog.Logger
}

// openSession loads configuration and initializes observability.
func (g *globalOptions) openSession(cmd *cobra.Command, mode observability.AppMode) (*session, error) {
	cfg, err := config.LoadConfig(g.configPath)
	if err != nil {
		return nil, err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Mode = mode
	obsCfg.Environment = cfg.Telemetry.Environment
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.SampleRatio = cfg.Telemetry.SampleRatio
	obsCfg.LogLevel = cfg.Logging.SlogLevel()
	obsCfg.LogJSON = cfg.Logging.JSON()

	if mode == observability.ModeMCP {
		// stdout carries the protocol; logs must be machine-readable on stderr.
		obsCfg.LogJSON = true
	}

	if g.debug {
		obsCfg.LogLevel = slog.LevelDebug
		obsCfg.DebugTrace = true
	}

	providers, err := g.initObs(obsCfg)
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	sess := &session{cfg: cfg, providers: providers, logger: providers.Logger}
	if sess.logger == nil {
		sess.logger = observability.NewLogger(obsCfg, cmd.ErrOrStderr())
	}

	if providers.Meter != nil {
		sess.red, err = observability.NewREDMetrics(providers.Meter)
		if err != nil {
			return nil, errorsJoinShutdown(err, providers)
		}
	}

	return sess, nil
}

// tracer returns the session tracer, or a no-op tracer.
func (s *session) tracer() trace.Tracer {
	if s.providers.Tracer == nil {
		return nooptrace.NewTracerProvider().Tracer("iconpack")
	}

	return s.providers.Tracer
}

// track records a RED sample for a CLI operation.
func (s *session) track(ctx context.Context, op string, start time.Time, err error) {
	if s.red == nil {
		return
	}

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
	}

	s.red.RecordRequest(ctx, "cli."+op, status, time.Since(start))
}

func (s *session) close() {
	if s.providers.Shutdown == nil {
		return
	}

	err := s.providers.Shutdown(context.Background())
	if err != nil {
		s.logger.Warn("observability shutdown failed", "error", err)
	}
}

func errorsJoinShutdown(err error, providers observability.Providers) error {
	if providers.Shutdown == nil {
		return err
	}

	shutdownErr := providers.Shutdown(context.Background())
	if shutdownErr != nil {
		return fmt.Errorf("%w (shutdown: %w)", err, shutdownErr)
	}

	return err
}
