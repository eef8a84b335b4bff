// SPDX-License-Identifier: MPL-2.0

// Package layout checks that a composed project graph matches the directory
// tree it was declared against. The resolver never touches the filesystem;
// this package is where missing or misplaced module directories surface.
package layout
