// SPDX-License-Identifier: MPL-2.0

package modgraph

import "strings"

// nameSeparator joins the root identifier and the logical key.
const nameSeparator = "-"

// DeriveName applies the naming convention to a logical key. Case folding is
// the only normalization; keys with characters the build executor rejects
// must be sanitized by the caller.
func DeriveName(root RootIdentifier, key LogicalKey) FinalName {
	return FinalName(strings.ToLower(string(root)) + nameSeparator + strings.ToLower(string(key)))
}

// Resolve maps one declaration to its descriptor. It is a pure function: the
// physical path is not checked against any filesystem.
func Resolve(root RootIdentifier, group Group, decl Declaration) (Descriptor, error) {
	return resolveAt(root, group, 0, decl)
}

// resolveAt is Resolve with the declaration's position in its group, so
// errors can point at the offending entry.
func resolveAt(root RootIdentifier, group Group, index int, decl Declaration) (Descriptor, error) {
	if err := root.Validate(); err != nil {
		return Descriptor{}, err
	}
	if err := group.Validate(); err != nil {
		return Descriptor{}, err
	}

	ref := DeclarationRef{Group: group, Index: index, Key: decl.Key}
	if strings.TrimSpace(string(decl.Key)) == "" {
		return Descriptor{}, &InvalidDeclarationError{Ref: ref, Reason: "logical key must not be empty"}
	}
	if decl.Path != "" && strings.TrimSpace(string(decl.Path)) == "" {
		return Descriptor{}, &InvalidDeclarationError{Ref: ref, Reason: "path override must not be whitespace-only"}
	}
	if decl.Name != "" && strings.TrimSpace(string(decl.Name)) == "" {
		return Descriptor{}, &InvalidDeclarationError{Ref: ref, Reason: "name override must not be whitespace-only"}
	}

	name := DeriveName(root, decl.Key)
	if decl.Name != "" {
		name = FinalName(strings.ToLower(string(decl.Name)))
	}

	path := PhysicalPath(decl.Key)
	if decl.Path != "" {
		path = decl.Path
	}

	return Descriptor{
		Name:  name,
		Path:  path,
		Group: group,
		Key:   decl.Key,
		Index: index,
	}, nil
}
