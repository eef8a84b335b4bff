// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/modgraph/modgraph/pkg/modgraph"
)

const (
	sampleCUE = `
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
publishing: {
	repository: {name: "releases", url: "https://repo.example.org/releases/"}
	javadoc: false
}
`

	sampleTOML = `
root = "triumph-cmd"
group = "dev.triumphteam"
version = "2.0.0"

[[modules]]
key = "core"

[[modules]]
key = "bukkit"
path = "minecraft/bukkit"

[[examples]]
key = "bukkit-example"
path = "examples/minecraft/bukkit"

[publishing]
javadoc = false

[publishing.repository]
name = "releases"
url = "https://repo.example.org/releases/"
`

	sampleHCL = `
root    = "triumph-cmd"
group   = "dev.triumphteam"
version = "2.0.0"

module "core" {}

module "bukkit" {
  path = "minecraft/bukkit"
}

example "bukkit-example" {
  path = "examples/minecraft/bukkit"
}

publishing {
  javadoc = false

  repository {
    name = "releases"
    url  = "https://repo.example.org/releases/"
  }
}
`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func wantSettings() *Settings {
	javadoc := false
	return &Settings{
		Root:    "triumph-cmd",
		Group:   "dev.triumphteam",
		Version: "2.0.0",
		Modules: []Module{
			{Key: "core"},
			{Key: "bukkit", Path: "minecraft/bukkit"},
		},
		Examples: []Module{
			{Key: "bukkit-example", Path: "examples/minecraft/bukkit"},
		},
		Publishing: &Publishing{
			Repository: Repository{Name: "releases", URL: "https://repo.example.org/releases/"},
			Javadoc:    &javadoc,
		},
	}
}

func TestLoad_AllFormatsAgree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file    string
		content string
	}{
		{"modgraph.cue", sampleCUE},
		{"modgraph.toml", sampleTOML},
		{"modgraph.hcl", sampleHCL},
	}

	want := wantSettings()
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			got, err := NewLoader().Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Load() = %+v, want %+v", got, want)
			}
			if got.Publishing.WantJavadoc() {
				t.Error("javadoc was disabled explicitly")
			}
			if !got.Publishing.WantSources() {
				t.Error("sources default to enabled")
			}
		})
	}
}

func TestSettings_Groups(t *testing.T) {
	t.Parallel()

	groups := wantSettings().Groups()
	if len(groups) != 2 {
		t.Fatalf("Groups() returned %d groups, want 2", len(groups))
	}
	if groups[0].Group != modgraph.GroupCore || groups[1].Group != modgraph.GroupExample {
		t.Errorf("group order = %q, %q", groups[0].Group, groups[1].Group)
	}
	wantCore := []modgraph.Declaration{
		{Key: "core"},
		{Key: "bukkit", Path: "minecraft/bukkit"},
	}
	if !reflect.DeepEqual(groups[0].Declarations, wantCore) {
		t.Errorf("core declarations = %+v, want %+v", groups[0].Declarations, wantCore)
	}

	graph, err := modgraph.Compose(wantSettings().RootIdentifier(), groups...)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}
	if _, ok := graph.Get("triumph-cmd-bukkit"); !ok {
		t.Error("composed graph is missing triumph-cmd-bukkit")
	}
}

func TestLoad_EmptyKeyReachesComposer(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "modgraph.cue", `
root: "demo"
modules: [{key: "core"}, {key: ""}]
`)
	s, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	_, err = modgraph.Compose(s.RootIdentifier(), s.Groups()...)
	var declErr *modgraph.InvalidDeclarationError
	if !errors.As(err, &declErr) {
		t.Fatalf("want *InvalidDeclarationError, got %v", err)
	}
	if declErr.Ref.Index != 1 {
		t.Errorf("Ref.Index = %d, want 1", declErr.Ref.Index)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"cue unknown field", "modgraph.cue", `root: "demo"` + "\nplugins: []\n", ErrSettingsParse},
		{"cue missing root", "modgraph.cue", `modules: [{key: "core"}]`, ErrSettingsParse},
		{"cue bad repository url", "modgraph.cue", `root: "demo", publishing: repository: url: "ftp://x"`, ErrSettingsParse},
		{"toml unknown field", "modgraph.toml", "root = \"demo\"\nplugins = []\n", ErrSettingsParse},
		{"toml blank root", "modgraph.toml", "root = \"  \"\n", ErrInvalidSettings},
		{"hcl syntax", "modgraph.hcl", "root = \n", ErrSettingsParse},
		{"hcl missing repository url", "modgraph.hcl", "root = \"demo\"\npublishing {\n  repository {}\n}\n", ErrSettingsParse},
		{"unsupported extension", "modgraph.yaml", "root: demo\n", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := NewLoader().Load(context.Background(), path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_InvalidSettingsCarriesPath(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "modgraph.toml", "root = \"\"\n")
	_, err := NewLoader().Load(context.Background(), path)

	var invalid *InvalidSettingsError
	if !errors.As(err, &invalid) {
		t.Fatalf("want *InvalidSettingsError, got %T (%v)", err, err)
	}
	if invalid.Path != path {
		t.Errorf("Path = %q, want %q", invalid.Path, path)
	}
	if !errors.Is(err, modgraph.ErrInvalidRootIdentifier) {
		t.Errorf("error should carry ErrInvalidRootIdentifier, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "modgraph.cue"))
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Errorf("want ErrSettingsNotFound, got %v", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeFile(t, t.TempDir(), "modgraph.cue", sampleCUE)
	if _, err := NewLoader().Load(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		if _, err := Find(t.TempDir()); !errors.Is(err, ErrSettingsNotFound) {
			t.Errorf("want ErrSettingsNotFound, got %v", err)
		}
	})

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		want := writeFile(t, dir, "modgraph.hcl", sampleHCL)
		got, err := Find(dir)
		if err != nil {
			t.Fatalf("Find() unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Find() = %q, want %q", got, want)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "modgraph.cue", sampleCUE)
		writeFile(t, dir, "modgraph.toml", sampleTOML)
		if _, err := Find(dir); !errors.Is(err, ErrAmbiguousSettings) {
			t.Errorf("want ErrAmbiguousSettings, got %v", err)
		}
	})
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	want := wantSettings()
	want.Modules = append(want.Modules, Module{Key: "api", Name: "triumph-cmd-api-legacy"})

	got, err := Parse(FormatCUE, []byte(GenerateCUE(want)), "generated.cue")
	if err != nil {
		t.Fatalf("Parse(GenerateCUE()) unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"modgraph.cue":         FormatCUE,
		"/a/b/settings.TOML":   FormatTOML,
		"project/modgraph.hcl": FormatHCL,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = (%q, %v), want %q", path, got, err, want)
		}
	}
	if _, err := FormatOf("modgraph.json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatOf(.json) should fail with ErrUnsupportedFormat, got %v", err)
	}
}
