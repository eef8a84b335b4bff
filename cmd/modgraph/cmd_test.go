// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modgraph/modgraph/internal/config"
	"github.com/modgraph/modgraph/internal/issue"
	"github.com/modgraph/modgraph/internal/report"
	"github.com/modgraph/modgraph/internal/settings"
	"github.com/modgraph/modgraph/internal/testutil"
)

type stubConfig struct {
	cfg *config.Config
	err error
}

func (s stubConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	c := *s.cfg
	return &c, nil
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, cfg *config.Config, args ...string) cliResult {
	t.Helper()

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		ConfigProvider: stubConfig{cfg: cfg},
		Stdout:         &stdout,
		Stderr:         &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func wantExit(t *testing.T, err error, code int) {
	t.Helper()
	if got := exitCode(err); got != code {
		t.Errorf("exit code = %d, want %d (err: %v)", got, code, err)
	}
}

func TestGraph_Text(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "graph", "-C", testutil.NewTriumphProject(t, false))
	if res.err != nil {
		t.Fatalf("graph failed: %v\n%s", res.err, res.stderr)
	}
	for _, name := range []string{"triumph-cmd-core", "triumph-cmd-bukkit", "triumph-cmd-bukkit-example", "minecraft/bukkit"} {
		if !strings.Contains(res.stdout, name) {
			t.Errorf("output is missing %q:\n%s", name, res.stdout)
		}
	}
	if !strings.Contains(res.stderr, "project composed") {
		t.Errorf("expected an info log line on stderr:\n%s", res.stderr)
	}
}

func TestGraph_JSONGroupFilter(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "graph", "-C", testutil.NewTriumphProject(t, false), "--format", "json", "--group", "example")
	if res.err != nil {
		t.Fatalf("graph failed: %v", res.err)
	}

	var doc report.GraphDocument
	if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if doc.Root != "triumph-cmd" || len(doc.Modules) != 1 || doc.Modules[0].Name != "triumph-cmd-bukkit-example" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestGraph_FormatFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output = config.OutputYAML
	res := runCLI(t, cfg, "graph", "-C", testutil.NewTriumphProject(t, false))
	if res.err != nil {
		t.Fatalf("graph failed: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "root: triumph-cmd") {
		t.Errorf("want YAML output, got:\n%s", res.stdout)
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	dir := testutil.NewTriumphProject(t, false)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"graph", "-C", dir, "--format", "html"}},
		{"unknown group", []string{"graph", "-C", dir, "--group", "plugin"}},
		{"unknown flag", []string{"graph", "--no-such-flag"}},
		{"extra argument", []string{"validate", "extra"}},
		{"pom without name", []string{"publish", "pom", "-C", dir}},
		{"bad log level", []string{"graph", "-C", dir, "--log-level", "chatty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wantExit(t, runCLI(t, nil, tt.args...).err, ExitUsage)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("layout ok", func(t *testing.T) {
		t.Parallel()
		res := runCLI(t, nil, "validate", "-C", testutil.NewTriumphProject(t, true))
		if res.err != nil {
			t.Fatalf("validate failed: %v\n%s", res.err, res.stderr)
		}
		if !strings.Contains(res.stdout, "3 modules (2 publishable)") {
			t.Errorf("stdout = %q", res.stdout)
		}
	})

	t.Run("missing directories", func(t *testing.T) {
		t.Parallel()
		res := runCLI(t, nil, "validate", "-C", testutil.NewTriumphProject(t, false))
		wantExit(t, res.err, ExitFailure)
		var ae *issue.ActionableError
		if !errors.As(res.err, &ae) || ae.Issue != issue.ModulePathInvalidId {
			t.Errorf("want ModulePathInvalidId, got %v", res.err)
		}
	})

	t.Run("skip paths", func(t *testing.T) {
		t.Parallel()
		res := runCLI(t, nil, "validate", "-C", testutil.NewTriumphProject(t, false), "--skip-paths")
		if res.err != nil {
			t.Fatalf("validate failed: %v", res.err)
		}
		if !strings.Contains(res.stdout, "not checked") {
			t.Errorf("stdout = %q", res.stdout)
		}
	})

	t.Run("config disables path checks", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.VerifyPaths = false
		if res := runCLI(t, cfg, "validate", "-C", testutil.NewTriumphProject(t, false)); res.err != nil {
			t.Fatalf("validate failed: %v", res.err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		content := "root = \"demo\"\n[[modules]]\nkey = \"api\"\n[[examples]]\nkey = \"API\"\npath = \"examples/api\"\n"
		dir := testutil.NewProject(t, "modgraph.toml", content)
		res := runCLI(t, nil, "validate", "-C", dir)
		wantExit(t, res.err, ExitFailure)
		if !strings.Contains(res.err.Error(), "demo-api") {
			t.Errorf("error should name the module: %v", res.err)
		}
	})
}

func TestVerboseRendersIssue(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "graph", "-C", t.TempDir(), "--verbose")
	wantExit(t, res.err, ExitFailure)
	if !strings.Contains(res.stderr, "Error chain") {
		t.Errorf("verbose output should include the error chain:\n%s", res.stderr)
	}
	if !strings.Contains(res.stderr, "modgraph init") {
		t.Errorf("verbose output should include the issue text:\n%s", res.stderr)
	}
}

func TestPublishPlan(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Publish = config.Credentials{Username: "alice", Password: "s3cret"}
	res := runCLI(t, cfg, "publish", "plan", "-C", testutil.NewTriumphProject(t, false), "-f", "json", "-v")
	if res.err != nil {
		t.Fatalf("publish plan failed: %v\n%s", res.err, res.stderr)
	}
	if strings.Contains(res.stdout+res.stderr, "s3cret") {
		t.Error("password leaked into the output")
	}

	var doc report.PlanDocument
	if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if len(doc.Publications) != 2 {
		t.Fatalf("got %d publications, want 2", len(doc.Publications))
	}
	for _, p := range doc.Publications {
		if p.Module.Group != "core" {
			t.Errorf("example module published: %s", p.Module.Name)
		}
		if p.Coordinates.GroupID != "dev.triumphteam" || p.Coordinates.Version != "2.0.0" {
			t.Errorf("coordinates = %s", p.Coordinates)
		}
	}
}

func TestPublishPOM(t *testing.T) {
	t.Parallel()

	dir := testutil.NewTriumphProject(t, false)

	res := runCLI(t, nil, "publish", "pom", "triumph-cmd-bukkit", "-C", dir)
	if res.err != nil {
		t.Fatalf("publish pom failed: %v", res.err)
	}
	if !strings.Contains(res.stdout, "<artifactId>triumph-cmd-bukkit</artifactId>") {
		t.Errorf("POM = %s", res.stdout)
	}

	res = runCLI(t, nil, "publish", "pom", "triumph-cmd-bukkit-example", "-C", dir)
	if !errors.Is(res.err, ErrNotPublishable) {
		t.Errorf("want ErrNotPublishable, got %v", res.err)
	}
	res = runCLI(t, nil, "publish", "pom", "triumph-cmd-velocity", "-C", dir)
	if !errors.Is(res.err, ErrUnknownModule) {
		t.Errorf("want ErrUnknownModule, got %v", res.err)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "triumph-cmd")
	testutil.MustMkdirAll(t, dir)

	res := runCLI(t, nil, "init", "-C", dir, "--module", "core,bukkit")
	if res.err != nil {
		t.Fatalf("init failed: %v\n%s", res.err, res.stderr)
	}

	s, err := settings.NewLoader().Load(context.Background(), filepath.Join(dir, "modgraph.cue"))
	if err != nil {
		t.Fatalf("generated settings do not load: %v", err)
	}
	if s.Root != "triumph-cmd" || len(s.Modules) != 2 {
		t.Errorf("settings = %+v", s)
	}

	res = runCLI(t, nil, "init", "-C", dir)
	if !errors.Is(res.err, ErrSettingsExist) {
		t.Errorf("second init: want ErrSettingsExist, got %v", res.err)
	}
	if res = runCLI(t, nil, "init", "-C", dir, "--root", "other", "--force"); res.err != nil {
		t.Errorf("init --force failed: %v", res.err)
	}
}

func TestConfigCommands(t *testing.T) {
	t.Parallel()

	t.Run("path", func(t *testing.T) {
		t.Parallel()
		res := runCLI(t, nil, "config", "path", "--config", "/tmp/custom.cue")
		if res.err != nil || strings.TrimSpace(res.stdout) != "/tmp/custom.cue" {
			t.Errorf("config path = (%q, %v)", res.stdout, res.err)
		}
	})

	t.Run("show masks credentials", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Publish = config.Credentials{Username: "alice", Password: "s3cret"}
		res := runCLI(t, cfg, "config", "show")
		if res.err != nil {
			t.Fatalf("config show failed: %v", res.err)
		}
		if strings.Contains(res.stdout, "s3cret") || !strings.Contains(res.stdout, "alice:****") {
			t.Errorf("config show output:\n%s", res.stdout)
		}
	})

	t.Run("dump", func(t *testing.T) {
		t.Parallel()
		res := runCLI(t, nil, "config", "dump")
		if res.err != nil || !strings.Contains(res.stdout, `output: "text"`) {
			t.Errorf("config dump = (%q, %v)", res.stdout, res.err)
		}
	})

	t.Run("init", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "config.cue")
		if res := runCLI(t, nil, "config", "init", "--config", path); res.err != nil {
			t.Fatalf("config init failed: %v", res.err)
		}
		if _, err := config.NewProvider().Load(context.Background(), config.LoadOptions{ConfigFilePath: path}); err != nil {
			t.Errorf("written config does not load: %v", err)
		}
		wantExit(t, runCLI(t, nil, "config", "init", "--config", path).err, ExitFailure)
	})

	t.Run("load failure", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		app := NewApp(Dependencies{
			ConfigProvider: stubConfig{err: errors.New("broken config")},
			Stdout:         &stdout,
			Stderr:         &stderr,
		})
		root := NewRootCommand(app)
		root.SetArgs([]string{"config", "show"})
		wantExit(t, root.ExecuteContext(context.Background()), ExitFailure)
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("plain"), ExitFailure},
		{usageError(errors.New("bad flag")), ExitUsage},
		{&ExitError{Code: 7}, 7},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
