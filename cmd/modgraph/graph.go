// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modgraph/modgraph/internal/report"
	"github.com/modgraph/modgraph/internal/watch"
	"github.com/modgraph/modgraph/pkg/modgraph"
)

type graphFlags struct {
	format string
	group  string
	watch  bool
}

func newGraphCommand(app *App, g *globalFlags) *cobra.Command {
	f := &graphFlags{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the composed project graph",
		Long: `Show every module of the composed project graph with its final name,
directory and group.

With --watch, the graph is recomposed and printed again whenever the
settings file changes.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(cmd.Context(), app, g, f)
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format (text, json, yaml, markdown)")
	cmd.Flags().StringVar(&f.group, "group", "", "only show one group (core, example)")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "recompose when the settings file changes")

	return cmd
}

func runGraph(ctx context.Context, app *App, g *globalFlags, f *graphFlags) error {
	s, err := app.newSession(ctx, g)
	if err != nil {
		return err
	}
	opts, err := s.reportOptions(f.format)
	if err != nil {
		return err
	}
	group := modgraph.Group(f.group)
	if group != "" {
		if err := group.Validate(); err != nil {
			return usageError(fmt.Errorf("--group: %w", err))
		}
	}

	ws, err := app.openWorkspace(ctx, g, s, false)
	if err != nil {
		return err
	}
	if err := report.Graph(app.stdout, report.NewGraphDocument(ws.Graph, group), opts); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	w, err := watch.New(watch.Config{
		BaseDir:     ws.Dir,
		Patterns:    []string{filepath.Base(ws.SettingsPath)},
		ClearScreen: opts.Format == report.FormatText,
		Stdout:      app.stdout,
		Logger:      s.logger,
		OnChange: func(ctx context.Context, _ []string) error {
			next, err := app.openWorkspace(ctx, g, s, false)
			if err != nil {
				return err
			}
			return report.Graph(app.stdout, report.NewGraphDocument(next.Graph, group), opts)
		},
	})
	if err != nil {
		return err
	}
	s.logger.Info("watching for changes", "settings", ws.SettingsPath)
	return w.Run(ctx)
}
