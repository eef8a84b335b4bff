// SPDX-License-Identifier: MPL-2.0

// Package report renders project graphs and publication plans as text
// tables, JSON, YAML or terminal Markdown.
package report
