// SPDX-License-Identifier: MPL-2.0

// Package modgraph composes a project graph from module declarations.
//
// A declaration names a module by its logical key and optionally overrides the
// directory that holds its sources and the final name it is published under.
// Resolve turns one declaration into a Descriptor by applying the project-wide
// naming convention:
//
//	finalName = lowercase(root) + "-" + lowercase(logicalKey)
//
// A Registry folds ordered declaration groups (core modules, examples) into an
// immutable ProjectGraph keyed by final name. Two declarations that resolve to
// the same final name are a configuration error; the registry never overwrites
// an entry.
//
// # Usage
//
//	graph, err := modgraph.Compose("triumph-cmd",
//	    modgraph.DeclarationGroup{
//	        Group: modgraph.GroupCore,
//	        Declarations: []modgraph.Declaration{
//	            {Key: "core"},
//	            {Key: "bukkit", Path: "minecraft/bukkit"},
//	        },
//	    },
//	)
//
// The package performs no I/O. Whether a physical path exists is decided by
// the consumer of the graph.
package modgraph
