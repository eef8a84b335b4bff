// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modgraph/modgraph/internal/config"
)

// newConfigCommand creates the `modgraph config` command tree.
func newConfigCommand(app *App, g *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage modgraph configuration",
		Long: `Manage modgraph configuration.

Configuration is stored in:
  - Linux: ~/.config/modgraph/config.cue
  - macOS: ~/Library/Application Support/modgraph/config.cue
  - Windows: %APPDATA%\modgraph\config.cue

Every key can be overridden with a MODGRAPH_ environment variable, for
example MODGRAPH_OUTPUT=json or MODGRAPH_LOG_LEVEL=debug.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app, g)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  noArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.FilePath(config.LoadOptions{ConfigFilePath: g.configPath})
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.newSession(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(s.cfg))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  noArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(app, g, force)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, g *globalFlags) error {
	s, err := app.newSession(ctx, g)
	if err != nil {
		return err
	}
	cfg := s.cfg

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if cfg.Source != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfg.Source)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	settingsFile := SubtitleStyle.Render("(none)")
	if cfg.SettingsFile != "" {
		settingsFile = valueStyle.Render(cfg.SettingsFile)
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("settings_file"), settingsFile)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("verify_paths"), valueStyle.Render(fmt.Sprintf("%v", cfg.VerifyPaths)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output"), valueStyle.Render(cfg.Output.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(w, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("publish credentials"), valueStyle.Render(cfg.Publish.String()))

	return nil
}

func initConfig(app *App, g *globalFlags, force bool) error {
	opts := config.LoadOptions{ConfigFilePath: g.configPath}
	path, err := config.FilePath(opts)
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !force {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)}
	}

	if _, err := config.Save(config.DefaultConfig(), opts); err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
