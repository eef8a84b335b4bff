// SPDX-License-Identifier: MPL-2.0

package layout

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/modgraph/modgraph/pkg/modgraph"
)

const (
	// ProblemAbsolute marks a path that is not relative to the project root.
	ProblemAbsolute ProblemKind = "absolute path"
	// ProblemEscapesRoot marks a path that climbs above the project root.
	ProblemEscapesRoot ProblemKind = "escapes project root"
	// ProblemMissing marks a path that does not exist.
	ProblemMissing ProblemKind = "directory does not exist"
	// ProblemNotDirectory marks a path that exists but is a file.
	ProblemNotDirectory ProblemKind = "not a directory"
	// ProblemUnreadable marks a path that could not be inspected.
	ProblemUnreadable ProblemKind = "cannot be read"
)

// ErrInvalidModulePath is the sentinel error wrapped by PathError.
var ErrInvalidModulePath = errors.New("invalid module path")

type (
	// ProblemKind classifies a PathProblem.
	ProblemKind string

	// PathProblem is one module whose directory is unusable.
	PathProblem struct {
		Module modgraph.FinalName
		Path   modgraph.PhysicalPath
		Kind   ProblemKind
		// Err is the filesystem error for ProblemUnreadable.
		Err error
	}

	// PathError lists every module with an unusable directory.
	PathError struct {
		Problems []PathProblem
	}

	// Verifier checks module directories on a billy filesystem rooted at the
	// project directory.
	Verifier struct {
		fs billy.Filesystem
	}
)

// NewVerifier returns a Verifier over fs. Paths are resolved relative to the
// root of fs.
func NewVerifier(fs billy.Filesystem) *Verifier {
	return &Verifier{fs: fs}
}

// NewOSVerifier returns a Verifier over the local directory root.
func NewOSVerifier(root string) *Verifier {
	return NewVerifier(osfs.New(root))
}

// Verify checks every descriptor in graph, in declaration order, and reports
// all problems at once.
func (v *Verifier) Verify(ctx context.Context, graph *modgraph.ProjectGraph) error {
	var problems []PathProblem
	for _, d := range graph.Descriptors() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("verify layout canceled: %w", err)
		}
		if p, ok := v.check(d); !ok {
			problems = append(problems, p)
		}
	}
	if len(problems) > 0 {
		return &PathError{Problems: problems}
	}
	return nil
}

func (v *Verifier) check(d modgraph.Descriptor) (PathProblem, bool) {
	problem := PathProblem{Module: d.Name, Path: d.Path}

	raw := string(d.Path)
	if filepath.IsAbs(raw) || path.IsAbs(filepath.ToSlash(raw)) {
		problem.Kind = ProblemAbsolute
		return problem, false
	}

	clean := path.Clean(filepath.ToSlash(raw))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		problem.Kind = ProblemEscapesRoot
		return problem, false
	}

	info, err := v.fs.Stat(clean)
	switch {
	case os.IsNotExist(err):
		problem.Kind = ProblemMissing
		return problem, false
	case err != nil:
		problem.Kind = ProblemUnreadable
		problem.Err = err
		return problem, false
	case !info.IsDir():
		problem.Kind = ProblemNotDirectory
		return problem, false
	}
	return problem, true
}

// String renders the problem as "<module> (<path>): <kind>".
func (p PathProblem) String() string {
	s := fmt.Sprintf("%s (%s): %s", p.Module, p.Path, p.Kind)
	if p.Err != nil {
		s += ": " + p.Err.Error()
	}
	return s
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.String()
	}
	return fmt.Sprintf("%d invalid module path(s): %s", len(e.Problems), strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidModulePath for errors.Is() compatibility.
func (e *PathError) Unwrap() error { return ErrInvalidModulePath }
