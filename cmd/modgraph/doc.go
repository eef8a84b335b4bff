// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the modgraph command-line interface.
//
// Every command is built by a constructor that receives the App composition
// root. Handlers resolve configuration, open the workspace and render reports
// through it, so tests can inject configuration, settings loaders and output
// writers through Dependencies.
package cmd
