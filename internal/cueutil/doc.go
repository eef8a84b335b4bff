// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against embedded schemas.
//
// Settings files and the application config share one flow: compile the
// schema, compile the user document, unify the two under a root definition,
// validate, and decode into a Go value. Errors carry the offending file and
// a JSON-path style location such as "modules[1].path".
package cueutil
