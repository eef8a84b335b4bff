// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modgraph/modgraph/internal/settings"
)

// ErrSettingsExist is returned by init when the project already has settings.
var ErrSettingsExist = errors.New("settings file already exists")

type initFlags struct {
	root    string
	modules []string
	force   bool
}

func newInitCommand(app *App, g *globalFlags) *cobra.Command {
	f := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create modgraph.cue in the project directory",
		Long: `Create a starter modgraph.cue in the project directory.

The root identifier defaults to the directory name. Every --module adds a
core module whose directory equals its key.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), app, g, f)
		},
	}

	cmd.Flags().StringVar(&f.root, "root", "", "root identifier (default: the directory name)")
	cmd.Flags().StringSliceVarP(&f.modules, "module", "m", []string{"core"}, "core module keys")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "overwrite existing settings")

	return cmd
}

func runInit(ctx context.Context, app *App, g *globalFlags, f *initFlags) error {
	s, err := app.newSession(ctx, g)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(g.dir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, settings.FormatCUE.FileName())

	if !f.force {
		existing, findErr := settings.Find(dir)
		switch {
		case findErr == nil:
			return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%w: %s (use --force to overwrite)", ErrSettingsExist, existing)}
		case errors.Is(findErr, settings.ErrAmbiguousSettings):
			return &ExitError{Code: ExitFailure, Err: findErr}
		}
	}

	root := f.root
	if root == "" {
		root = filepath.Base(dir)
	}
	if strings.TrimSpace(root) == "" {
		return usageError(errors.New("--root must not be blank"))
	}

	st := &settings.Settings{Root: root}
	for _, key := range f.modules {
		st.Modules = append(st.Modules, settings.Module{Key: key})
	}

	if err := os.WriteFile(path, []byte(settings.GenerateCUE(st)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	// Reading the file back catches keys the schema rejects.
	if _, err := app.Settings.Load(ctx, path); err != nil {
		return app.fail(err, s.verbose, s.cfg.UI.ColorScheme)
	}
	s.logger.Debug("settings written", "path", path, "root", root, "modules", len(st.Modules))

	fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), path)
	fmt.Fprintln(app.stdout)
	fmt.Fprintln(app.stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(app.stdout, "  1. Declare your modules and examples in "+settings.FormatCUE.FileName())
	fmt.Fprintln(app.stdout, "  2. Run "+CmdStyle.Render("modgraph validate")+" to check names and directories")
	return nil
}
