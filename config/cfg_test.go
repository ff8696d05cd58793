package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"animseq/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Generation.DurationsSource != "transitionDuration" {
		t.Errorf("DurationsSource = %q, want transitionDuration", cfg.Generation.DurationsSource)
	}
	if cfg.Generation.DurationOrder != common.KeyOrderInsertion {
		t.Errorf("DurationOrder = %v, want insertion", cfg.Generation.DurationOrder)
	}
	if cfg.Output.Format != common.OutputFmtCss {
		t.Errorf("Format = %v, want css", cfg.Output.Format)
	}
	// templates must survive configuration processing unexpanded
	if !strings.Contains(cfg.Output.NameTemplate, "{{") {
		t.Errorf("NameTemplate = %q, want unexpanded template", cfg.Output.NameTemplate)
	}
	if !strings.Contains(cfg.Output.Banner, "{{") {
		t.Errorf("Banner = %q, want unexpanded template", cfg.Output.Banner)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
generation:
  durations_source: animationDuration
  tailwind_durations: true
  duration_order: natural
  emit_keyframes: true
output:
  format: json
  transliterate: true
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Generation.DurationsSource != "animationDuration" {
		t.Errorf("DurationsSource = %q", cfg.Generation.DurationsSource)
	}
	if !cfg.Generation.TailwindDurations || !cfg.Generation.EmitKeyframes {
		t.Error("expected boolean generation options to be set")
	}
	if cfg.Generation.DurationOrder != common.KeyOrderNatural {
		t.Errorf("DurationOrder = %v, want natural", cfg.Generation.DurationOrder)
	}
	if cfg.Output.Format != common.OutputFmtJson {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
	// not in file - default stays
	if cfg.Reporting.Destination == "" {
		t.Error("expected default report destination")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid yaml": `version: 1
generation:
  emit_keyframes: true
  invalid indent
`,
		"unknown field": `version: 1
unknown_field: value
`,
		"bad version": `version: 2`,
		"bad format": `version: 1
output:
  format: scss
`,
		"bad order": `version: 1
generation:
  duration_order: random
`,
		"empty source": `version: 1
generation:
  durations_source: ""
`,
		"empty keyframe source": `version: 1
generation:
  keyframe_sources: [""]
`,
		"bad log level": `version: 1
logging:
  console:
    level: verbose
`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	cfg := &Config{}
	if _, err = unmarshalConfig(data, cfg, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Output.Format = common.OutputFmtYaml
	cfg.Generation.KeyframeSources = []string{"animations.css"}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: yaml") {
		t.Errorf("Dump() output does not contain format:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output.Format != common.OutputFmtYaml {
		t.Errorf("Format after dump/load = %v, want yaml", cfg2.Output.Format)
	}
	if len(cfg2.Generation.KeyframeSources) != 1 {
		t.Errorf("KeyframeSources after dump/load = %v", cfg2.Generation.KeyframeSources)
	}
}
