// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "modgraph",
		Short: "Compose multi-module project graphs",
		Long: TitleStyle.Render("modgraph") + SubtitleStyle.Render(" - compose multi-module project graphs") + `

modgraph reads a project settings file (modgraph.cue, modgraph.toml or
modgraph.hcl), derives a unique final name for every declared module and
folds core modules and examples into one project graph. The graph drives
layout verification and the publication plan for a Maven repository.

` + SubtitleStyle.Render("Examples:") + `
  modgraph init --root triumph-cmd   Create modgraph.cue
  modgraph graph                     Show the composed graph
  modgraph validate                  Check names and module directories
  modgraph publish plan              List the artifacts that would be published`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&g.settingsPath, "settings", "s", "", "settings file (default: the modgraph.* file in --dir)")
	pf.StringVarP(&g.dir, "dir", "C", ".", "project directory")
	pf.StringVar(&g.configPath, "config", "", "config file (default is $HOME/.config/modgraph/config.cue)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newGraphCommand(app, g),
		newValidateCommand(app, g),
		newPublishCommand(app, g),
		newInitCommand(app, g),
		newConfigCommand(app, g),
	)

	return rootCmd
}

// Execute runs the CLI with production dependencies and exits the process
// with the mapped exit code. It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(exitCode(err))
	}
}

// exactArgs wraps cobra.ExactArgs so argument errors exit with ExitUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// noArgs wraps cobra.NoArgs so argument errors exit with ExitUsage.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}
