// SPDX-License-Identifier: MPL-2.0

package modgraph

import (
	"fmt"
	"strings"
)

const (
	// GroupCore tags modules that make up the published library.
	GroupCore Group = "core"
	// GroupExample tags demo modules that are built but never published.
	GroupExample Group = "example"
)

type (
	// RootIdentifier is the project-wide prefix of every derived final name,
	// e.g. "triumph-cmd" in "triumph-cmd-core".
	RootIdentifier string

	// LogicalKey is the short, human-chosen identifier of a module. It is
	// independent of the module's location on disk.
	LogicalKey string

	// PhysicalPath is the directory, relative to the declaration root, that
	// holds a module's sources.
	PhysicalPath string

	// FinalName is the globally unique module identifier used as the artifact
	// name by compilation and publishing.
	FinalName string

	// Group is the coarse classification of a module. It decides whether the
	// module participates in publishing.
	Group string

	// Declaration is the input unit of composition. Path and Name are optional;
	// the zero value of either means "derive it".
	Declaration struct {
		// Key is the logical key. It must not be empty.
		Key LogicalKey `json:"key" yaml:"key"`
		// Path overrides the physical path. Defaults to Key.
		Path PhysicalPath `json:"path,omitempty" yaml:"path,omitempty"`
		// Name overrides the derived final name.
		Name FinalName `json:"name,omitempty" yaml:"name,omitempty"`
	}

	// DeclarationRef identifies a declaration by its position in the
	// configuration. It is what error reports point the operator at.
	DeclarationRef struct {
		Group Group
		Index int
		Key   LogicalKey
	}

	// Descriptor is a fully resolved module.
	Descriptor struct {
		Name  FinalName    `json:"name" yaml:"name"`
		Path  PhysicalPath `json:"path" yaml:"path"`
		Group Group        `json:"group" yaml:"group"`
		// Key is the logical key the descriptor was resolved from.
		Key LogicalKey `json:"key" yaml:"key"`
		// Index is the position of the declaration within its group.
		Index int `json:"-" yaml:"-"`
	}

	// DeclarationGroup is one ordered list of declarations sharing a group tag.
	DeclarationGroup struct {
		Group        Group
		Declarations []Declaration
	}
)

// String returns the string representation of the RootIdentifier.
func (r RootIdentifier) String() string { return string(r) }

// Validate returns nil if the root identifier is usable as a name prefix.
func (r RootIdentifier) Validate() error {
	if strings.TrimSpace(string(r)) == "" {
		return &InvalidRootIdentifierError{Value: r}
	}
	return nil
}

// String returns the string representation of the LogicalKey.
func (k LogicalKey) String() string { return string(k) }

// String returns the string representation of the PhysicalPath.
func (p PhysicalPath) String() string { return string(p) }

// String returns the string representation of the FinalName.
func (n FinalName) String() string { return string(n) }

// String returns the string representation of the Group.
func (g Group) String() string { return string(g) }

// Validate returns nil if the group is one of the defined groups.
func (g Group) Validate() error {
	switch g {
	case GroupCore, GroupExample:
		return nil
	default:
		return &InvalidGroupError{Value: g}
	}
}

// Publishable reports whether modules of this group are published.
func (g Group) Publishable() bool { return g == GroupCore }

// Groups returns every defined group in composition order.
func Groups() []Group {
	return []Group{GroupCore, GroupExample}
}

// Ref returns the reference of the declaration the descriptor came from.
func (d Descriptor) Ref() DeclarationRef {
	return DeclarationRef{Group: d.Group, Index: d.Index, Key: d.Key}
}

// String renders the reference as group[index] "key".
func (r DeclarationRef) String() string {
	return fmt.Sprintf("%s[%d] %q", r.Group, r.Index, r.Key)
}
