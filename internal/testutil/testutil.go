// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TriumphCUE declares two core modules, one of them relocated, and one
// example. Its directories are TriumphDirs.
const TriumphCUE = `
root:    "triumph-cmd"
group:   "dev.triumphteam"
version: "2.0.0"
modules: [
	{key: "core"},
	{key: "bukkit", path: "minecraft/bukkit"},
]
examples: [
	{key: "bukkit-example", path: "examples/minecraft/bukkit"},
]
publishing: repository: {name: "releases", url: "https://repo.example.org/releases/"}
`

// TriumphDirs are the module directories TriumphCUE declares.
var TriumphDirs = []string{"core", "minecraft/bukkit", "examples/minecraft/bukkit"}

// MustWriteFile writes content to path, creating parent directories.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()
	MustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustMkdirAll creates a directory along with any necessary parents.
func MustMkdirAll(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
}

// NewProject creates a temporary project holding the settings file name with
// content, plus the given slash-separated module directories.
func NewProject(t testing.TB, name, content string, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	MustWriteFile(t, filepath.Join(root, name), content)
	for _, d := range dirs {
		MustMkdirAll(t, filepath.Join(root, filepath.FromSlash(d)))
	}
	return root
}

// NewTriumphProject creates the TriumphCUE project. With withDirs set, every
// module directory exists.
func NewTriumphProject(t testing.TB, withDirs bool) string {
	t.Helper()
	var dirs []string
	if withDirs {
		dirs = TriumphDirs
	}
	return NewProject(t, "modgraph.cue", TriumphCUE, dirs...)
}
