// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modgraph/modgraph/internal/report"
	"github.com/modgraph/modgraph/pkg/modgraph"
)

var (
	// ErrUnknownModule is returned when a final name is not part of the graph.
	ErrUnknownModule = errors.New("unknown module")
	// ErrNotPublishable is returned for modules outside the core group.
	ErrNotPublishable = errors.New("module is not published")
)

func newPublishCommand(app *App, g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Plan the publication of core modules",
		Long: `Plan the publication of every core module to the repository named in the
settings file. Examples are never published. Nothing is uploaded.

Credentials are read from MODGRAPH_PUBLISH_USERNAME and
MODGRAPH_PUBLISH_PASSWORD, falling back to gradle_username and
gradle_password. They are never printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var format string
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "List the artifacts of every publication",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPublishPlan(cmd.Context(), app, g, format)
		},
	}
	planCmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, json, yaml, markdown)")

	cmd.AddCommand(planCmd, &cobra.Command{
		Use:   "pom <final-name>",
		Short: "Print the POM of one module",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublishPOM(cmd.Context(), app, g, modgraph.FinalName(args[0]))
		},
	})

	return cmd
}

func runPublishPlan(ctx context.Context, app *App, g *globalFlags, format string) error {
	s, err := app.newSession(ctx, g)
	if err != nil {
		return err
	}
	opts, err := s.reportOptions(format)
	if err != nil {
		return err
	}
	ws, err := app.openWorkspace(ctx, g, s, false)
	if err != nil {
		return err
	}

	pubs, pubOpts, err := ws.Plan(s.credentials())
	if err != nil {
		return app.fail(err, s.verbose, s.cfg.UI.ColorScheme)
	}
	s.logger.Debug("publication planned", "repository", pubOpts.Repository.URL, "credentials", pubOpts.Repository.Credentials)

	return report.Plan(app.stdout, report.PlanDocument{Repository: pubOpts.Repository, Publications: pubs}, opts)
}

func runPublishPOM(ctx context.Context, app *App, g *globalFlags, name modgraph.FinalName) error {
	s, err := app.newSession(ctx, g)
	if err != nil {
		return err
	}
	ws, err := app.openWorkspace(ctx, g, s, false)
	if err != nil {
		return err
	}

	d, ok := ws.Graph.Get(name)
	switch {
	case !ok:
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%w %q", ErrUnknownModule, name)}
	case !d.Group.Publishable():
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%w: %s belongs to the %s group", ErrNotPublishable, name, d.Group)}
	}

	pubs, _, err := ws.Plan(s.credentials())
	if err != nil {
		return app.fail(err, s.verbose, s.cfg.UI.ColorScheme)
	}
	for _, p := range pubs {
		if p.Module.Name != name {
			continue
		}
		pom, err := p.POM()
		if err != nil {
			return err
		}
		_, err = app.stdout.Write(pom)
		return err
	}
	return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%w %q", ErrUnknownModule, name)}
}
