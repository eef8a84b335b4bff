// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(app *App, g *globalFlags) *cobra.Command {
	var skipPaths bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Compose the project and verify module directories",
		Long: `Compose the project graph and check that every module directory exists
below the settings file directory.

Composition stops at the first invalid declaration or duplicate final name.
Directory problems are collected and reported together.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), app, g, skipPaths)
		},
	}

	cmd.Flags().BoolVar(&skipPaths, "skip-paths", false, "only compose, do not check module directories")

	return cmd
}

func runValidate(ctx context.Context, app *App, g *globalFlags, skipPaths bool) error {
	s, err := app.newSession(ctx, g)
	if err != nil {
		return err
	}

	verify := s.cfg.VerifyPaths && !skipPaths
	ws, err := app.openWorkspace(ctx, g, s, verify)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "%s %s: %d modules (%d publishable)\n",
		SuccessStyle.Render("✓"),
		CmdStyle.Render(ws.SettingsPath),
		ws.Graph.Len(),
		len(ws.Graph.Publishable()))
	if !verify {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("  module directories were not checked"))
	}
	return nil
}
