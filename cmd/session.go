package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/almanac/internal/assets"
	"github.com/papapumpkin/almanac/internal/config"
	"github.com/papapumpkin/almanac/internal/telemetry"
	"github.com/papapumpkin/almanac/internal/ui"
)

// session bundles what every command opens from configuration.
type session struct {
	cfg       config.Config
	log       *zap.Logger
	src       assets.Source
	telemetry *telemetry.Emitter
}

// openSession loads configuration and opens the logger, asset source and
// telemetry emitter. interactive selects the TUI logging policy: the
// terminal is never written to.
func openSession(interactive bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cfg, interactive)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	src, err := newSource(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	var em *telemetry.Emitter
	if cfg.TelemetryFile != "" {
		em, err = telemetry.NewEmitter(cfg.TelemetryFile)
		if err != nil {
			_ = log.Sync()
			return nil, err
		}
		log = log.With(zap.String("session", em.Session))
	}

	log.Debug("session opened",
		zap.String("assets", cfg.Assets),
		zap.String("letters", cfg.Letters),
		zap.String("manifest", cfg.Manifest),
		zap.Int("concurrency", cfg.Probe.Concurrency),
	)
	return &session{cfg: cfg, log: log, src: src, telemetry: em}, nil
}

func (s *session) Close() {
	if err := s.telemetry.Close(); err != nil {
		s.log.Warn("closing telemetry", zap.Error(err))
	}
	_ = s.log.Sync()
}

// newLogger builds the zap logger. Logs go to cfg.LogFile when set. Without
// a log file the TUI logs nothing, and the plain commands log to stderr
// only when verbose.
func newLogger(cfg config.Config, interactive bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	switch {
	case cfg.LogFile != "":
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	case interactive || !cfg.Verbose:
		return zap.NewNop(), nil
	}
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// newSource opens the asset root, bounds concurrent loads, and applies the
// manifest if configured. The manifest sits outside the limit so unlisted
// paths are rejected without waiting for a slot.
func newSource(cfg config.Config) (assets.Source, error) {
	root, err := assets.New(cfg.Assets, cfg.Probe.Timeout)
	if err != nil {
		return nil, err
	}
	var src assets.Source = assets.NewLimited(root, cfg.Probe.Concurrency)
	if cfg.Manifest != "" {
		m, err := assets.LoadManifest(cfg.Manifest)
		if err != nil {
			return nil, err
		}
		src = assets.ManifestSource{Manifest: m, Next: src}
	}
	return src, nil
}

// printerFor returns a printer on the command's writers, colored only when
// writing to a terminal.
func printerFor(cmd *cobra.Command) *ui.Printer {
	out := cmd.OutOrStdout()
	color := out == os.Stdout && term.IsTerminal(os.Stdout.Fd())
	return ui.NewWriter(out, cmd.ErrOrStderr(), color)
}

func isStderrTTY() bool {
	return term.IsTerminal(os.Stderr.Fd())
}
