// SPDX-License-Identifier: MPL-2.0

package modgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDeclaration is the sentinel error wrapped by InvalidDeclarationError.
	ErrInvalidDeclaration = errors.New("invalid module declaration")
	// ErrDuplicateModuleName is the sentinel error wrapped by DuplicateModuleNameError.
	ErrDuplicateModuleName = errors.New("duplicate module name")
	// ErrInvalidRootIdentifier is the sentinel error wrapped by InvalidRootIdentifierError.
	ErrInvalidRootIdentifier = errors.New("invalid root identifier")
	// ErrInvalidGroup is the sentinel error wrapped by InvalidGroupError.
	ErrInvalidGroup = errors.New("invalid module group")
	// ErrRegistrySealed is returned when a declaration is registered after
	// the graph has been composed.
	ErrRegistrySealed = errors.New("registry already composed")
)

type (
	// InvalidDeclarationError is returned when a declaration fails structural
	// validation. It wraps ErrInvalidDeclaration for errors.Is() compatibility.
	InvalidDeclarationError struct {
		Ref    DeclarationRef
		Reason string
	}

	// DuplicateModuleNameError is returned when two declarations resolve to the
	// same final name. First is the declaration already in the graph, Second
	// the one that collided with it.
	DuplicateModuleNameError struct {
		Name   FinalName
		First  DeclarationRef
		Second DeclarationRef
	}

	// InvalidRootIdentifierError is returned when the root identifier is empty
	// or whitespace-only.
	InvalidRootIdentifierError struct {
		Value RootIdentifier
	}

	// InvalidGroupError is returned when a Group value is not recognized.
	InvalidGroupError struct {
		Value Group
	}
)

// Error implements the error interface for InvalidDeclarationError.
func (e *InvalidDeclarationError) Error() string {
	return fmt.Sprintf("invalid declaration %s[%d]: %s", e.Ref.Group, e.Ref.Index, e.Reason)
}

// Unwrap returns ErrInvalidDeclaration for errors.Is() compatibility.
func (e *InvalidDeclarationError) Unwrap() error { return ErrInvalidDeclaration }

// Error implements the error interface for DuplicateModuleNameError.
func (e *DuplicateModuleNameError) Error() string {
	return fmt.Sprintf("duplicate module name %q: declared by %s and %s", e.Name, e.First, e.Second)
}

// Unwrap returns ErrDuplicateModuleName for errors.Is() compatibility.
func (e *DuplicateModuleNameError) Unwrap() error { return ErrDuplicateModuleName }

// Error implements the error interface for InvalidRootIdentifierError.
func (e *InvalidRootIdentifierError) Error() string {
	return fmt.Sprintf("invalid root identifier %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidRootIdentifier for errors.Is() compatibility.
func (e *InvalidRootIdentifierError) Unwrap() error { return ErrInvalidRootIdentifier }

// Error implements the error interface for InvalidGroupError.
func (e *InvalidGroupError) Error() string {
	return fmt.Sprintf("invalid module group %q (valid: core, example)", e.Value)
}

// Unwrap returns ErrInvalidGroup for errors.Is() compatibility.
func (e *InvalidGroupError) Unwrap() error { return ErrInvalidGroup }
