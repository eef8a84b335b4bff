// SPDX-License-Identifier: MPL-2.0

// Package settings loads project settings files: the root identifier, the
// core and example module declarations, and the publishing block.
//
// Three syntaxes are accepted and chosen by file name: modgraph.cue (validated
// against the embedded #Settings schema), modgraph.toml and modgraph.hcl. All
// three decode into the same Settings value, whose Groups method produces the
// ordered declaration groups consumed by modgraph.Compose.
package settings
