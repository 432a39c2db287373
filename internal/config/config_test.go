package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kayz/kathakar/internal/story"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Gemini.Model != story.DefaultModel {
		t.Fatalf("default model: got %q", cfg.Gemini.Model)
	}
	if cfg.Generation.Temperature != story.DefaultTemperature {
		t.Fatalf("default temperature: got %v", cfg.Generation.Temperature)
	}
	if cfg.Translation.Language != story.DefaultTranslationLanguage {
		t.Fatalf("default language: got %q", cfg.Translation.Language)
	}
	if cfg.Web.Port == 0 {
		t.Fatal("default web port should be set")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kathakar.yaml")
	doc := `gemini:
  model: gemini-1.5-pro
translation:
  language: Hindi
  max_chars: 2400
web:
  port: 9090
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gemini.Model != "gemini-1.5-pro" {
		t.Fatalf("model override: got %q", cfg.Gemini.Model)
	}
	if cfg.Translation.Language != "Hindi" || cfg.Translation.MaxChars != 2400 {
		t.Fatalf("translation override: %+v", cfg.Translation)
	}
	if cfg.Web.Port != 9090 {
		t.Fatalf("port override: got %d", cfg.Web.Port)
	}
	// Untouched sections keep their defaults.
	if cfg.Generation.Temperature != story.DefaultTemperature {
		t.Fatalf("generation defaults lost: %+v", cfg.Generation)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kathakar.yaml")
	if err := os.WriteFile(path, []byte("gemini: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml should be an error")
	}
}

func TestAPIKeyPrefersEnvironment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "from-file"

	t.Setenv("GEMINI_API_KEY", "from-env")
	if got := cfg.APIKey(); got != "from-env" {
		t.Fatalf("environment should win, got %q", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if got := cfg.APIKey(); got != "from-file" {
		t.Fatalf("file value should be the fallback, got %q", got)
	}
}
