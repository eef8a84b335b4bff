// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"context"
	"errors"

	"github.com/modgraph/modgraph/internal/issue"
	"github.com/modgraph/modgraph/internal/layout"
	"github.com/modgraph/modgraph/internal/publish"
	"github.com/modgraph/modgraph/internal/settings"
	"github.com/modgraph/modgraph/pkg/modgraph"
)

// actionable wraps err with the catalog entry matching its sentinel.
// Cancellation passes through unchanged.
func actionable(operation, resource string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	ec := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		Wrap(err)

	switch {
	case errors.Is(err, settings.ErrSettingsNotFound):
		ec.WithIssue(issue.SettingsNotFoundId).
			WithSuggestions("Run 'modgraph init' to create modgraph.cue", "Pass --settings to point at an existing file")
	case errors.Is(err, settings.ErrAmbiguousSettings):
		ec.WithIssue(issue.AmbiguousSettingsId).
			WithSuggestion("Keep a single settings file or pass --settings")
	case errors.Is(err, settings.ErrSettingsParse), errors.Is(err, settings.ErrUnsupportedFormat):
		ec.WithIssue(issue.SettingsParseErrorId)
	case errors.Is(err, settings.ErrInvalidSettings):
		ec.WithIssue(issue.InvalidSettingsId)
	case errors.Is(err, modgraph.ErrInvalidDeclaration):
		ec.WithIssue(issue.InvalidDeclarationId).
			WithSuggestion("Every module entry needs a non-empty key")
	case errors.Is(err, modgraph.ErrDuplicateModuleName):
		ec.WithIssue(issue.DuplicateModuleNameId).
			WithSuggestion("Rename one of the keys or give one module an explicit name")
	case errors.Is(err, layout.ErrInvalidModulePath):
		ec.WithIssue(issue.ModulePathInvalidId).
			WithSuggestion("Create the missing directories or fix the path overrides")
	case errors.Is(err, publish.ErrInvalidOptions), errors.Is(err, publish.ErrInvalidArtifactID),
		errors.Is(err, ErrPublishingDisabled):
		ec.WithIssue(issue.PublishConfigInvalidId)
	}

	return ec.BuildError()
}
