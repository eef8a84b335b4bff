// SPDX-License-Identifier: MPL-2.0

package modgraph

import "fmt"

const (
	// StateEmpty is a registry with no declarations.
	StateEmpty State = iota
	// StateAccumulating is a registry that has accepted at least one declaration.
	StateAccumulating
	// StateComposed is a registry whose graph has been handed out. Terminal.
	StateComposed
	// StateFailed is a registry that rejected a declaration. Terminal.
	StateFailed
)

type (
	// State is the lifecycle position of a Registry.
	State int

	// Registry accumulates resolved descriptors and enforces final-name
	// uniqueness. It is not safe for concurrent use; composition is a
	// single-threaded pass. The graph it returns is.
	Registry struct {
		root    RootIdentifier
		state   State
		err     error
		byName  map[FinalName]Descriptor
		ordered []FinalName
	}
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAccumulating:
		return "accumulating"
	case StateComposed:
		return "composed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// NewRegistry creates an empty registry for the given root identifier.
func NewRegistry(root RootIdentifier) (*Registry, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		root:   root,
		state:  StateEmpty,
		byName: make(map[FinalName]Descriptor),
	}, nil
}

// State returns the current lifecycle state.
func (r *Registry) State() State { return r.state }

// Register resolves decl, found at position index of group, and inserts it.
// The first error moves the registry to StateFailed; every later call returns
// that same error.
func (r *Registry) Register(group Group, index int, decl Declaration) error {
	switch r.state {
	case StateFailed:
		return r.err
	case StateComposed:
		return ErrRegistrySealed
	}

	desc, err := resolveAt(r.root, group, index, decl)
	if err != nil {
		return r.fail(err)
	}

	if existing, ok := r.byName[desc.Name]; ok {
		return r.fail(&DuplicateModuleNameError{
			Name:   desc.Name,
			First:  existing.Ref(),
			Second: desc.Ref(),
		})
	}

	r.byName[desc.Name] = desc
	r.ordered = append(r.ordered, desc.Name)
	r.state = StateAccumulating
	return nil
}

// RegisterGroup registers every declaration of g in order and stops at the
// first error.
func (r *Registry) RegisterGroup(g DeclarationGroup) error {
	for i, decl := range g.Declarations {
		if err := r.Register(g.Group, i, decl); err != nil {
			return err
		}
	}
	return nil
}

// Compose seals the registry and returns the graph. A failed registry returns
// its first error and no graph. Composing twice returns an equal graph.
func (r *Registry) Compose() (*ProjectGraph, error) {
	if r.state == StateFailed {
		return nil, r.err
	}
	r.state = StateComposed
	return newProjectGraph(r.root, r.byName, r.ordered), nil
}

func (r *Registry) fail(err error) error {
	r.state = StateFailed
	r.err = err
	// Drop accumulated descriptors so nothing partial can leak out.
	r.byName = nil
	r.ordered = nil
	return err
}

// Compose folds the declaration groups into a project graph in one pass.
func Compose(root RootIdentifier, groups ...DeclarationGroup) (*ProjectGraph, error) {
	reg, err := NewRegistry(root)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := reg.RegisterGroup(g); err != nil {
			return nil, err
		}
	}
	return reg.Compose()
}
