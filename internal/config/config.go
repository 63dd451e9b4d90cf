package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// ChunkSize is the number of runes handed to one pattern run.
	ChunkSize = 1000

	// DefaultVideoURL is processed when the user gives no URL.
	DefaultVideoURL = "https://www.youtube.com/watch?v=ITOZkzjtjUA"

	outputSubdir = "output"
)

type Config struct {
	Tools   ToolsConfig   `yaml:"tools"`
	Pattern PatternConfig `yaml:"pattern"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type ToolsConfig struct {
	Transcript string `yaml:"transcript"`
}

type PatternConfig struct {
	Backend string `yaml:"backend"`
	Binary  string `yaml:"binary"`
}

type GeminiConfig struct {
	Model       string `yaml:"model"`
	PatternsDir string `yaml:"patterns_dir"`
	APIKey      string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	Inbox string `yaml:"inbox"`
}

// DefaultPath returns ~/.config/wisdom-flow/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Op: "resolve home directory", Err: err}
	}
	return filepath.Join(home, ".config", "wisdom-flow", "config.yaml"), nil
}

// Load reads configuration from path.
// A missing file is not an error: the returned Config is empty and
// callers apply defaults with Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &ConfigError{Op: "read " + path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Op: "parse " + path, Err: err}
	}

	return &cfg, nil
}

// LoadEnv loads a .env file from the working directory if one exists and
// picks up the Gemini API key.
func (c *Config) LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &ConfigError{Op: "load .env", Err: err}
	}

	c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	return nil
}

// ExpandPaths replaces a leading ~ with home in all path fields.
func (c *Config) ExpandPaths(home string) {
	c.Gemini.PatternsDir = expandPath(c.Gemini.PatternsDir, home)
	c.Watch.Inbox = expandPath(c.Watch.Inbox, home)
	c.Tools.Transcript = expandPath(c.Tools.Transcript, home)
	c.Pattern.Binary = expandPath(c.Pattern.Binary, home)
}

func expandPath(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks backend names and fills defaults for empty fields.
// Paths default relative to home.
func (c *Config) Validate(home string) error {
	if c.Tools.Transcript == "" {
		c.Tools.Transcript = "yt"
	}
	if c.Pattern.Backend == "" {
		c.Pattern.Backend = "fabric"
	}
	c.Pattern.Backend = strings.ToLower(c.Pattern.Backend)
	switch c.Pattern.Backend {
	case "fabric", "gemini":
	default:
		return &ConfigError{Op: "validate", Err: fmt.Errorf("unknown pattern.backend: %s (supported: fabric, gemini)", c.Pattern.Backend)}
	}
	if c.Pattern.Binary == "" {
		c.Pattern.Binary = "fabric"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.PatternsDir == "" {
		c.Gemini.PatternsDir = filepath.Join(home, ".config", "fabric", "patterns")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.Inbox == "" {
		c.Watch.Inbox = filepath.Join(home, outputSubdir, "inbox")
	}

	return nil
}
