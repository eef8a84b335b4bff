// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into user-facing guidance.
//
// ActionableError carries the failed operation, the file or module involved,
// and remediation hints. The Issue catalog holds longer Markdown explanations
// rendered with glamour when the CLI runs in verbose mode.
package issue
