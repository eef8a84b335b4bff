// SPDX-License-Identifier: MPL-2.0

// Package workspace opens a project: it locates and loads the settings file,
// composes the module graph and optionally verifies the module directories
// on disk. Failures are returned as issue.ActionableError values that point
// at the matching catalog entry.
package workspace
