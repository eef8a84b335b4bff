// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modgraph/modgraph/pkg/modgraph"
)

var (
	// ErrSettingsNotFound is returned when no settings file exists in a directory.
	ErrSettingsNotFound = errors.New("settings file not found")
	// ErrAmbiguousSettings is returned when a directory holds more than one settings file.
	ErrAmbiguousSettings = errors.New("ambiguous settings files")
	// ErrSettingsParse is the sentinel error wrapped by ParseError.
	ErrSettingsParse = errors.New("failed to parse settings")
	// ErrInvalidSettings is the sentinel error wrapped by InvalidSettingsError.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrUnsupportedFormat is returned for file names with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported settings format")
)

type (
	// Settings is the decoded content of a project settings file.
	Settings struct {
		// Root is the root identifier every final name is derived from.
		Root string `json:"root" toml:"root"`
		// Group is the artifact group used when publishing.
		Group string `json:"group,omitempty" toml:"group,omitempty"`
		// Version is the artifact version used when publishing.
		Version string `json:"version,omitempty" toml:"version,omitempty"`
		// Modules are the core module declarations.
		Modules []Module `json:"modules,omitempty" toml:"modules,omitempty"`
		// Examples are demo module declarations. They are never published.
		Examples []Module `json:"examples,omitempty" toml:"examples,omitempty"`
		// Publishing configures the remote repository. Nil disables publishing.
		Publishing *Publishing `json:"publishing,omitempty" toml:"publishing,omitempty"`
	}

	// Module is one declaration entry.
	Module struct {
		Key  string `json:"key" toml:"key"`
		Path string `json:"path,omitempty" toml:"path,omitempty"`
		Name string `json:"name,omitempty" toml:"name,omitempty"`
	}

	// Publishing is the publishing block of a settings file.
	Publishing struct {
		Repository Repository `json:"repository" toml:"repository"`
		// Sources attaches a -sources.jar artifact. Nil means true.
		Sources *bool `json:"sources,omitempty" toml:"sources,omitempty"`
		// Javadoc attaches a -javadoc.jar artifact. Nil means true.
		Javadoc *bool `json:"javadoc,omitempty" toml:"javadoc,omitempty"`
	}

	// Repository names the remote artifact repository.
	Repository struct {
		Name string `json:"name,omitempty" toml:"name,omitempty"`
		URL  string `json:"url" toml:"url"`
	}

	// ParseError is returned when a settings file cannot be decoded.
	ParseError struct {
		Path string
		Err  error
	}

	// InvalidSettingsError collects settings-level validation failures.
	InvalidSettingsError struct {
		Path        string
		FieldErrors []error
	}
)

// declarations converts entries to core declarations.
func declarations(mods []Module) []modgraph.Declaration {
	out := make([]modgraph.Declaration, len(mods))
	for i, m := range mods {
		out[i] = modgraph.Declaration{
			Key:  modgraph.LogicalKey(m.Key),
			Path: modgraph.PhysicalPath(m.Path),
			Name: modgraph.FinalName(m.Name),
		}
	}
	return out
}

// RootIdentifier returns Root as the core type.
func (s *Settings) RootIdentifier() modgraph.RootIdentifier {
	return modgraph.RootIdentifier(s.Root)
}

// Groups returns the declaration groups in composition order: core modules
// first, then examples.
func (s *Settings) Groups() []modgraph.DeclarationGroup {
	return []modgraph.DeclarationGroup{
		{Group: modgraph.GroupCore, Declarations: declarations(s.Modules)},
		{Group: modgraph.GroupExample, Declarations: declarations(s.Examples)},
	}
}

// Validate checks the fields that do not belong to any single declaration.
// Declarations themselves are validated during composition so errors can
// carry their position.
func (s *Settings) Validate() error {
	var errs []error
	if err := s.RootIdentifier().Validate(); err != nil {
		errs = append(errs, err)
	}
	if s.Publishing != nil && strings.TrimSpace(s.Publishing.Repository.URL) == "" {
		errs = append(errs, errors.New("publishing.repository.url must be set"))
	}
	if len(errs) > 0 {
		return &InvalidSettingsError{FieldErrors: errs}
	}
	return nil
}

// WantSources reports whether a sources artifact is published.
func (p *Publishing) WantSources() bool { return p.Sources == nil || *p.Sources }

// WantJavadoc reports whether a javadoc artifact is published.
func (p *Publishing) WantJavadoc() bool { return p.Javadoc == nil || *p.Javadoc }

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse settings %s: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying decoder error.
func (e *ParseError) Unwrap() []error { return []error{ErrSettingsParse, e.Err} }

// Error implements the error interface for InvalidSettingsError.
func (e *InvalidSettingsError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		msgs[i] = fe.Error()
	}
	prefix := "invalid settings"
	if e.Path != "" {
		prefix += " " + e.Path
	}
	return prefix + ": " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidSettings followed by the field errors.
func (e *InvalidSettingsError) Unwrap() []error {
	return append([]error{ErrInvalidSettings}, e.FieldErrors...)
}
