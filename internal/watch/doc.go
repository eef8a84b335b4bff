// SPDX-License-Identifier: MPL-2.0

// Package watch recomposes a project when its settings file or module
// directories change. Events are debounced, and a change that arrives while
// the previous recomposition is still running is deferred rather than run
// concurrently.
package watch
