package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	History HistoryConfig `json:"history" yaml:"history"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Render  RenderConfig  `json:"render" yaml:"render"`
}

// HistoryConfig controls where and how commit history is read.
type HistoryConfig struct {
	RepoPath       string       `json:"repoPath" yaml:"repoPath"`             // Default: "."
	Branch         string       `json:"branch" yaml:"branch"`                 // Default: "HEAD"
	All            bool         `json:"all" yaml:"all"`                       // Walk every branch and tag
	Backend        string       `json:"backend" yaml:"backend"`               // "git" or "go-git"
	TwoPass        bool         `json:"twoPass" yaml:"twoPass"`               // Separate identifier and ancestry queries
	TimeoutSeconds int          `json:"timeoutSeconds" yaml:"timeoutSeconds"` // 0 disables the timeout
	Refs           FilterConfig `json:"refs" yaml:"refs"`
}

// FilterConfig holds ref name filtering options.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// OutputConfig controls where the diagram text goes.
type OutputConfig struct {
	Path   string `json:"path" yaml:"path"`     // Empty or "-" writes to stdout
	Format string `json:"format" yaml:"format"` // plantuml, dot, json, csv
}

// RenderConfig controls the external PlantUML run.
type RenderConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	JavaPath       string `json:"javaPath" yaml:"javaPath"`
	PlantUMLJar    string `json:"plantumlJar" yaml:"plantumlJar"`
	TimeoutSeconds int    `json:"timeoutSeconds" yaml:"timeoutSeconds"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			RepoPath:       ".",
			Branch:         "HEAD",
			Backend:        "git",
			TimeoutSeconds: 0,
			Refs: FilterConfig{
				Include: []string{},
				Exclude: []string{},
			},
		},
		Output: OutputConfig{
			Format: "plantuml",
		},
		Render: RenderConfig{
			JavaPath:       "java",
			TimeoutSeconds: 120,
		},
	}
}

// configNames are probed, in order, when no config path is given.
var configNames = []string{".commitgraph.json", ".commitgraph.yaml", ".commitgraph.yml"}

// LoadConfig loads configuration from a file, merging with defaults.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfig()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file in the format its extension names.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func findConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}

	for _, dir := range dirs {
		for _, name := range configNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
