// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test fixtures for projects on disk. Every helper
// fails the test immediately when the filesystem operation fails.
package testutil
