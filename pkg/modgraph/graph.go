// SPDX-License-Identifier: MPL-2.0

package modgraph

import (
	"maps"
	"slices"
)

// ProjectGraph is the composed, immutable set of module descriptors. Every
// accessor returns copies, so any number of readers may share one graph.
type ProjectGraph struct {
	root    RootIdentifier
	byName  map[FinalName]Descriptor
	ordered []FinalName
}

func newProjectGraph(root RootIdentifier, byName map[FinalName]Descriptor, ordered []FinalName) *ProjectGraph {
	return &ProjectGraph{
		root:    root,
		byName:  maps.Clone(byName),
		ordered: slices.Clone(ordered),
	}
}

// Root returns the root identifier the graph was composed with.
func (g *ProjectGraph) Root() RootIdentifier { return g.root }

// Len returns the number of modules in the graph.
func (g *ProjectGraph) Len() int { return len(g.ordered) }

// Get looks up a descriptor by final name.
func (g *ProjectGraph) Get(name FinalName) (Descriptor, bool) {
	d, ok := g.byName[name]
	return d, ok
}

// Names returns all final names in lexical order.
func (g *ProjectGraph) Names() []FinalName {
	names := slices.Clone(g.ordered)
	slices.Sort(names)
	return names
}

// Descriptors returns all descriptors in declaration order.
func (g *ProjectGraph) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(g.ordered))
	for _, name := range g.ordered {
		out = append(out, g.byName[name])
	}
	return out
}

// InGroup returns the descriptors tagged with group, in declaration order.
func (g *ProjectGraph) InGroup(group Group) []Descriptor {
	var out []Descriptor
	for _, name := range g.ordered {
		if d := g.byName[name]; d.Group == group {
			out = append(out, d)
		}
	}
	return out
}

// Publishable returns the descriptors whose group participates in publishing.
func (g *ProjectGraph) Publishable() []Descriptor {
	var out []Descriptor
	for _, name := range g.ordered {
		if d := g.byName[name]; d.Group.Publishable() {
			out = append(out, d)
		}
	}
	return out
}
