// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/modgraph/modgraph/internal/layout"
	"github.com/modgraph/modgraph/internal/publish"
	"github.com/modgraph/modgraph/internal/settings"
	"github.com/modgraph/modgraph/pkg/modgraph"
)

// ErrPublishingDisabled is returned when the settings file has no publishing block.
var ErrPublishingDisabled = errors.New("publishing is not configured")

type (
	// Options controls how a project is opened.
	Options struct {
		// Dir is the project directory searched for a settings file.
		// Defaults to the working directory.
		Dir string
		// SettingsPath names the settings file explicitly. Relative paths are
		// resolved against Dir.
		SettingsPath string
		// FallbackSettings is used when Dir holds no settings file.
		FallbackSettings string
		// VerifyPaths checks every module directory after composition.
		VerifyPaths bool
		// Loader defaults to settings.NewLoader().
		Loader settings.Loader
		// Logger defaults to a logger that discards everything.
		Logger *log.Logger
	}

	// Workspace is an opened project.
	Workspace struct {
		// Dir is the directory module paths are relative to: the directory
		// holding the settings file.
		Dir          string
		SettingsPath string
		Settings     *settings.Settings
		Graph        *modgraph.ProjectGraph
	}
)

// Open loads, composes and optionally verifies the project described by opts.
func Open(ctx context.Context, opts Options) (*Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	loader := opts.Loader
	if loader == nil {
		loader = settings.NewLoader()
	}

	path, err := locate(opts)
	if err != nil {
		return nil, actionable("locate settings", opts.Dir, err)
	}
	logger.Debug("settings located", "path", path)

	s, err := loader.Load(ctx, path)
	if err != nil {
		return nil, actionable("load settings", path, err)
	}
	logger.Debug("settings loaded", "root", s.Root, "modules", len(s.Modules), "examples", len(s.Examples))

	graph, err := modgraph.Compose(s.RootIdentifier(), s.Groups()...)
	if err != nil {
		return nil, actionable("compose project", path, err)
	}
	logger.Info("project composed", "root", graph.Root(), "modules", graph.Len())

	ws := &Workspace{
		Dir:          filepath.Dir(path),
		SettingsPath: path,
		Settings:     s,
		Graph:        graph,
	}

	if opts.VerifyPaths {
		if err := layout.NewOSVerifier(ws.Dir).Verify(ctx, graph); err != nil {
			return nil, actionable("verify module layout", ws.Dir, err)
		}
		logger.Debug("module layout verified", "dir", ws.Dir)
	}

	return ws, nil
}

// locate resolves the settings file: the explicit path, then the single
// settings file in Dir, then the fallback.
func locate(opts Options) (string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if opts.SettingsPath != "" {
		if strings.TrimSpace(opts.SettingsPath) == "" {
			return "", errors.New("settings path must not be whitespace-only")
		}
		path := opts.SettingsPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return filepath.Abs(path)
	}

	found, err := settings.Find(dir)
	if errors.Is(err, settings.ErrSettingsNotFound) && opts.FallbackSettings != "" {
		return filepath.Abs(opts.FallbackSettings)
	}
	if err != nil {
		return "", err
	}
	return filepath.Abs(found)
}

// PublishOptions builds planner options from the settings publishing block
// and the injected credentials.
func (w *Workspace) PublishOptions(creds publish.Credentials) (publish.Options, error) {
	p := w.Settings.Publishing
	if p == nil {
		return publish.Options{}, actionable("plan publication", w.SettingsPath,
			fmt.Errorf("%w in %s", ErrPublishingDisabled, w.SettingsPath))
	}

	opts := publish.Options{
		GroupID: w.Settings.Group,
		Version: w.Settings.Version,
		Repository: publish.Repository{
			Name:        p.Repository.Name,
			URL:         p.Repository.URL,
			Credentials: creds,
		},
		Sources: p.WantSources(),
		Javadoc: p.WantJavadoc(),
	}
	if err := opts.Validate(); err != nil {
		return publish.Options{}, actionable("plan publication", w.SettingsPath, err)
	}
	return opts, nil
}

// Plan returns the publications for every publishable module.
func (w *Workspace) Plan(creds publish.Credentials) ([]publish.Publication, publish.Options, error) {
	opts, err := w.PublishOptions(creds)
	if err != nil {
		return nil, opts, err
	}
	pubs, err := publish.Plan(w.Graph, opts)
	if err != nil {
		return nil, opts, actionable("plan publication", w.SettingsPath, err)
	}
	return pubs, opts, nil
}
