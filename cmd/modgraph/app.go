// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/modgraph/modgraph/internal/config"
	"github.com/modgraph/modgraph/internal/issue"
	"github.com/modgraph/modgraph/internal/publish"
	"github.com/modgraph/modgraph/internal/report"
	"github.com/modgraph/modgraph/internal/settings"
	"github.com/modgraph/modgraph/internal/workspace"
)

type (
	// App wires CLI services and shared dependencies. Every Cobra command
	// handler receives an App and delegates to its services.
	App struct {
		Config   ConfigProvider
		Settings settings.Loader
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		ConfigProvider ConfigProvider
		SettingsLoader settings.Loader
		Stdout         io.Writer
		Stderr         io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// globalFlags holds the persistent flags of one invocation.
	globalFlags struct {
		settingsPath string
		dir          string
		configPath   string
		logLevel     string
		verbose      bool
	}

	// session is the configuration and logger resolved for one command run.
	session struct {
		cfg     *config.Config
		logger  *log.Logger
		verbose bool
	}
)

// NewApp creates the CLI composition root.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.ConfigProvider == nil {
		deps.ConfigProvider = config.NewProvider()
	}
	if deps.SettingsLoader == nil {
		deps.SettingsLoader = settings.NewLoader()
	}

	return &App{
		Config:   deps.ConfigProvider,
		Settings: deps.SettingsLoader,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// newSession loads the configuration and builds the stderr logger. Flags win
// over the configuration file.
func (a *App) newSession(ctx context.Context, g *globalFlags) (*session, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: g.configPath})
	if err != nil {
		return nil, a.fail(err, g.verbose, config.ColorSchemeAuto)
	}

	level := cfg.Log.Level
	if g.logLevel != "" {
		level = config.LogLevel(g.logLevel)
		if err := level.Validate(); err != nil {
			return nil, usageError(fmt.Errorf("--log-level: %w", err))
		}
	}
	verbose := g.verbose || cfg.UI.Verbose
	if verbose {
		level = config.LogLevelDebug
	}

	logger := log.NewWithOptions(a.stderr, log.Options{Prefix: config.AppName})
	logger.SetLevel(logLevel(level))
	if cfg.Source != "" {
		logger.Debug("configuration loaded", "path", cfg.Source)
	}

	return &session{cfg: cfg, logger: logger, verbose: verbose}, nil
}

// openWorkspace opens the project selected by the global flags.
func (a *App) openWorkspace(ctx context.Context, g *globalFlags, s *session, verify bool) (*workspace.Workspace, error) {
	ws, err := workspace.Open(ctx, workspace.Options{
		Dir:              g.dir,
		SettingsPath:     g.settingsPath,
		FallbackSettings: s.cfg.SettingsFile,
		VerifyPaths:      verify,
		Loader:           a.Settings,
		Logger:           s.logger,
	})
	if err != nil {
		return nil, a.fail(err, s.verbose, s.cfg.UI.ColorScheme)
	}
	return ws, nil
}

// reportOptions resolves the output format: the flag when set, else the
// configured default.
func (s *session) reportOptions(format string) (report.Options, error) {
	f := report.Format(s.cfg.Output)
	if format != "" {
		f = report.Format(format)
	}
	if err := f.Validate(); err != nil {
		return report.Options{}, usageError(fmt.Errorf("--format: %w", err))
	}
	return report.Options{Format: f, Style: glamourStyle(s.cfg.UI.ColorScheme)}, nil
}

// credentials converts the environment-bound credentials for the planner.
func (s *session) credentials() publish.Credentials {
	return publish.Credentials{
		Username: s.cfg.Publish.Username,
		Password: s.cfg.Publish.Password,
	}
}

// fail reports the catalog entry behind err when verbose output is on and
// converts err into an ExitError.
func (a *App) fail(err error, verbose bool, scheme config.ColorScheme) error {
	var ae *issue.ActionableError
	if verbose && errors.As(err, &ae) {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+ae.Format(true))
		if entry := issue.Get(ae.Issue); entry != nil {
			if rendered, renderErr := entry.Render(glamourStyle(scheme)); renderErr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

func logLevel(l config.LogLevel) log.Level {
	switch l {
	case config.LogLevelDebug:
		return log.DebugLevel
	case config.LogLevelWarn:
		return log.WarnLevel
	case config.LogLevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark, config.ColorSchemeLight:
		return string(scheme)
	default:
		return report.StyleAuto
	}
}
