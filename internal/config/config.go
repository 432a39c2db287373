package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kayz/kathakar/internal/chunker"
	"github.com/kayz/kathakar/internal/story"
)

var exeDirCache string

// getExecutableDir returns the directory where the executable is located
func getExecutableDir() string {
	if exeDirCache != "" {
		return exeDirCache
	}
	execPath, err := os.Executable()
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	exeDirCache = filepath.Dir(execPath)
	return exeDirCache
}

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini,omitempty"`
	Generation  GenerationConfig  `yaml:"generation,omitempty"`
	Translation TranslationConfig `yaml:"translation,omitempty"`
	Web         WebConfig         `yaml:"web,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
}

type GeminiConfig struct {
	// APIKey may be set here, but GEMINI_API_KEY in the environment wins.
	APIKey string `yaml:"api_key,omitempty"`
	Model  string `yaml:"model,omitempty"`
}

type GenerationConfig struct {
	Temperature float64 `yaml:"temperature,omitempty"`
	Mode        string  `yaml:"mode,omitempty"` // "auto", "single" or "chaptered"
}

type TranslationConfig struct {
	Language    string  `yaml:"language,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
	MaxChars    int     `yaml:"max_chars,omitempty"`
}

type WebConfig struct {
	Port int `yaml:"port,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model: story.DefaultModel,
		},
		Generation: GenerationConfig{
			Temperature: story.DefaultTemperature,
			Mode:        "auto",
		},
		Translation: TranslationConfig{
			Language:    story.DefaultTranslationLanguage,
			Temperature: story.DefaultTranslationTemperature,
			MaxChars:    chunker.DefaultMaxChars,
		},
		Web: WebConfig{
			Port: 18080,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func ConfigPath() string {
	return filepath.Join(getExecutableDir(), ".kathakar.yaml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// APIKey resolves the Gemini credential: environment first, then the file.
func (c *Config) APIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return c.Gemini.APIKey
}
