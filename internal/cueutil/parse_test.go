// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Module: {
	key:   string
	path?: string
}
#Project: close({
	root: string & !=""
	modules: [...#Module]
	draft?: bool
})
`

type (
	testModule struct {
		Key  string `json:"key"`
		Path string `json:"path,omitempty"`
	}

	testProject struct {
		Root    string       `json:"root"`
		Modules []testModule `json:"modules"`
	}
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
root: "demo"
modules: [{key: "core"}, {key: "bukkit", path: "minecraft/bukkit"}]
`)
		res, err := Decode[testProject]([]byte(testSchema), data, "#Project")
		if err != nil {
			t.Fatalf("Decode() unexpected error: %v", err)
		}
		if res.Value.Root != "demo" {
			t.Errorf("Root = %q, want %q", res.Value.Root, "demo")
		}
		if len(res.Value.Modules) != 2 || res.Value.Modules[1].Path != "minecraft/bukkit" {
			t.Errorf("Modules = %+v", res.Value.Modules)
		}
		if res.Unified.Err() != nil {
			t.Errorf("Unified value carries error: %v", res.Unified.Err())
		}
	})

	t.Run("closed schema rejects unknown field", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
root: "demo"
modules: []
plugins: ["x"]
`)
		_, err := Decode[testProject]([]byte(testSchema), data, "#Project", WithFilename("modgraph.cue"))
		if err == nil {
			t.Fatal("Decode() should reject unknown field")
		}
		if !strings.Contains(err.Error(), "modgraph.cue") {
			t.Errorf("error should name the file, got: %v", err)
		}
	})

	t.Run("type mismatch reports path", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
root: "demo"
modules: [{key: "core"}, {key: 42}]
`)
		_, err := Decode[testProject]([]byte(testSchema), data, "#Project", WithFilename("modgraph.cue"))
		if err == nil {
			t.Fatal("Decode() should reject a non-string key")
		}
		if !strings.Contains(err.Error(), "modules[1].key") {
			t.Errorf("error should contain JSON path, got: %v", err)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := Decode[testProject]([]byte(testSchema), []byte(`root: "demo`), "#Project")
		if err == nil {
			t.Fatal("Decode() should fail on a syntax error")
		}
		if !strings.Contains(err.Error(), "<input>") {
			t.Errorf("unnamed documents should be reported as <input>, got: %v", err)
		}
	})

	t.Run("missing definition", func(t *testing.T) {
		t.Parallel()

		_, err := Decode[testProject]([]byte(testSchema), []byte(`root: "demo"`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "#Missing") {
			t.Errorf("Decode() with unknown definition = %v", err)
		}
	})

	t.Run("non-concrete allowed when requested", func(t *testing.T) {
		t.Parallel()

		m, err := DecodeMap([]byte(testSchema), []byte(`root: "demo", modules: []`), "#Project", WithConcrete(false))
		if err != nil {
			t.Fatalf("DecodeMap() unexpected error: %v", err)
		}
		if m["root"] != "demo" {
			t.Errorf("root = %v, want demo", m["root"])
		}
	})
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "a.cue"); err != nil {
		t.Errorf("data at the limit should pass, got: %v", err)
	}
	err := CheckFileSize(make([]byte, 11), 10, "a.cue")
	if err == nil {
		t.Fatal("data over the limit should fail")
	}
	if !strings.Contains(err.Error(), "a.cue") {
		t.Errorf("error should name the file, got: %v", err)
	}

	_, err = Decode[testProject]([]byte(testSchema), []byte(`root: "demo", modules: []`), "#Project", WithMaxFileSize(4))
	if err == nil {
		t.Error("Decode() should enforce WithMaxFileSize")
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if FormatError(nil, "x.cue") != nil {
		t.Error("FormatError(nil) should be nil")
	}

	orig := errors.New("boom")
	err := FormatError(orig, "x.cue")
	if !errors.Is(err, orig) {
		t.Errorf("non-CUE errors should be wrapped, got: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "x.cue: ") {
		t.Errorf("error should be prefixed with file, got: %v", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"root"}, "root"},
		{[]string{"modules", "0", "key"}, "modules[0].key"},
		{[]string{"publishing", "repository", "url"}, "publishing.repository.url"},
		{[]string{"0"}, "0"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
