// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrInvalidOptions is the sentinel error wrapped by InvalidOptionsError.
	ErrInvalidOptions = errors.New("invalid publishing options")
	// ErrInvalidArtifactID is returned when a final name cannot be used as a
	// Maven artifactId.
	ErrInvalidArtifactID = errors.New("invalid artifact id")

	groupIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)
	artifactIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)
)

type (
	// Credentials authenticate against the repository.
	Credentials struct {
		Username string `json:"-" yaml:"-"`
		Password string `json:"-" yaml:"-"`
	}

	// Repository is the remote Maven repository publications are planned for.
	Repository struct {
		Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
		URL         string      `json:"url" yaml:"url"`
		Credentials Credentials `json:"-" yaml:"-"`
	}

	// Options configure Plan.
	Options struct {
		GroupID    string
		Version    string
		Repository Repository
		// Sources adds a -sources.jar artifact to every publication.
		Sources bool
		// Javadoc adds a -javadoc.jar artifact to every publication.
		Javadoc bool
	}

	// InvalidOptionsError collects every problem with Options.
	InvalidOptionsError struct {
		FieldErrors []error
	}

	// InvalidArtifactIDError names a module whose final name is not a valid
	// artifactId.
	InvalidArtifactIDError struct {
		Module     string
		ArtifactID string
	}
)

// IsZero reports whether no credentials were supplied.
func (c Credentials) IsZero() bool { return c.Username == "" && c.Password == "" }

// String masks the password.
func (c Credentials) String() string {
	switch {
	case c.IsZero():
		return "<none>"
	case c.Password == "":
		return c.Username
	default:
		return c.Username + ":****"
	}
}

// Validate checks group, version, repository URL and credentials.
func (o Options) Validate() error {
	var errs []error

	switch {
	case strings.TrimSpace(o.GroupID) == "":
		errs = append(errs, errors.New("group must be set"))
	case !groupIDPattern.MatchString(o.GroupID):
		errs = append(errs, fmt.Errorf("group %q is not a dotted identifier", o.GroupID))
	}

	switch {
	case strings.TrimSpace(o.Version) == "":
		errs = append(errs, errors.New("version must be set"))
	case strings.ContainsAny(o.Version, " \t\n/\\:"):
		errs = append(errs, fmt.Errorf("version %q contains whitespace, slashes or colons", o.Version))
	}

	if err := o.Repository.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return &InvalidOptionsError{FieldErrors: errs}
	}
	return nil
}

func (r Repository) validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return errors.New("repository url must be set")
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("repository url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("repository url %q must use http or https", r.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("repository url %q has no host", r.URL)
	}
	if r.Credentials.Password != "" && r.Credentials.Username == "" {
		return errors.New("repository password is set without a username")
	}
	return nil
}

// Error implements the error interface for InvalidOptionsError.
func (e *InvalidOptionsError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		msgs[i] = fe.Error()
	}
	return "invalid publishing options: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidOptions followed by the field errors.
func (e *InvalidOptionsError) Unwrap() []error {
	return append([]error{ErrInvalidOptions}, e.FieldErrors...)
}

// Error implements the error interface for InvalidArtifactIDError.
func (e *InvalidArtifactIDError) Error() string {
	return fmt.Sprintf("module %s: %q is not a valid artifact id", e.Module, e.ArtifactID)
}

// Unwrap returns ErrInvalidArtifactID for errors.Is() compatibility.
func (e *InvalidArtifactIDError) Unwrap() error { return ErrInvalidArtifactID }
