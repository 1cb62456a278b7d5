package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.History.RepoPath != "." {
		t.Errorf("History.RepoPath = %q, expected %q", cfg.History.RepoPath, ".")
	}
	if cfg.History.Branch != "HEAD" {
		t.Errorf("History.Branch = %q, expected %q", cfg.History.Branch, "HEAD")
	}
	if cfg.History.Backend != "git" {
		t.Errorf("History.Backend = %q, expected %q", cfg.History.Backend, "git")
	}
	if cfg.History.TwoPass {
		t.Errorf("History.TwoPass = true, expected false")
	}
	if cfg.Output.Format != "plantuml" {
		t.Errorf("Output.Format = %q, expected %q", cfg.Output.Format, "plantuml")
	}
	if cfg.Output.Path != "" {
		t.Errorf("Output.Path = %q, expected stdout", cfg.Output.Path)
	}
	if cfg.Render.Enabled {
		t.Errorf("Render.Enabled = true, expected false")
	}
	if cfg.Render.JavaPath != "java" {
		t.Errorf("Render.JavaPath = %q, expected %q", cfg.Render.JavaPath, "java")
	}
	if cfg.Render.TimeoutSeconds != 120 {
		t.Errorf("Render.TimeoutSeconds = %d, expected 120", cfg.Render.TimeoutSeconds)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitgraph.json")
	data := `{
  "history": {"repoPath": "/src/repo", "all": true, "refs": {"include": ["release/*"]}},
  "output": {"path": "out.puml"}
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.History.RepoPath != "/src/repo" {
		t.Errorf("History.RepoPath = %q, expected %q", cfg.History.RepoPath, "/src/repo")
	}
	if !cfg.History.All {
		t.Errorf("History.All = false, expected true")
	}
	if len(cfg.History.Refs.Include) != 1 || cfg.History.Refs.Include[0] != "release/*" {
		t.Errorf("History.Refs.Include = %v, expected [release/*]", cfg.History.Refs.Include)
	}
	if cfg.Output.Path != "out.puml" {
		t.Errorf("Output.Path = %q, expected %q", cfg.Output.Path, "out.puml")
	}
	// Unset fields keep their defaults.
	if cfg.Output.Format != "plantuml" {
		t.Errorf("Output.Format = %q, expected default %q", cfg.Output.Format, "plantuml")
	}
	if cfg.History.Branch != "HEAD" {
		t.Errorf("History.Branch = %q, expected default %q", cfg.History.Branch, "HEAD")
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitgraph.yaml")
	data := `history:
  backend: go-git
  twoPass: true
  timeoutSeconds: 30
render:
  enabled: true
  plantumlJar: /opt/plantuml.jar
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.History.Backend != "go-git" {
		t.Errorf("History.Backend = %q, expected %q", cfg.History.Backend, "go-git")
	}
	if !cfg.History.TwoPass {
		t.Errorf("History.TwoPass = false, expected true")
	}
	if cfg.History.TimeoutSeconds != 30 {
		t.Errorf("History.TimeoutSeconds = %d, expected 30", cfg.History.TimeoutSeconds)
	}
	if !cfg.Render.Enabled || cfg.Render.PlantUMLJar != "/opt/plantuml.jar" {
		t.Errorf("Render = %+v, expected enabled with jar", cfg.Render)
	}
	if cfg.Render.JavaPath != "java" {
		t.Errorf("Render.JavaPath = %q, expected default %q", cfg.Render.JavaPath, "java")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Output.Format != "plantuml" {
		t.Errorf("Output.Format = %q, expected %q", cfg.Output.Format, "plantuml")
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(jsonPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(jsonPath); err == nil {
		t.Errorf("expected error for invalid JSON")
	}

	yamlPath := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(yamlPath, []byte("history: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(yamlPath); err == nil {
		t.Errorf("expected error for invalid YAML")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	for _, name := range []string{"cfg.json", "cfg.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := DefaultConfig()
			cfg.History.All = true
			cfg.Output.Format = "dot"

			if err := SaveConfig(cfg, path); err != nil {
				t.Fatalf("SaveConfig: %v", err)
			}
			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if !loaded.History.All || loaded.Output.Format != "dot" {
				t.Errorf("loaded = %+v, expected All and dot format", loaded)
			}
		})
	}
}
