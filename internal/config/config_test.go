package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "gemini backend",
			config: Config{
				Pattern: PatternConfig{Backend: "Gemini"},
			},
			wantErr: false,
		},
		{
			name: "unknown backend",
			config: Config{
				Pattern: PatternConfig{Backend: "ollama"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate("/home/tester")
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate("/home/tester"); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"Tools.Transcript", cfg.Tools.Transcript, "yt"},
		{"Pattern.Backend", cfg.Pattern.Backend, "fabric"},
		{"Pattern.Binary", cfg.Pattern.Binary, "fabric"},
		{"Gemini.Model", cfg.Gemini.Model, "gemini-2.5-flash"},
		{"Gemini.PatternsDir", cfg.Gemini.PatternsDir, "/home/tester/.config/fabric/patterns"},
		{"Logging.Level", cfg.Logging.Level, "info"},
		{"Watch.Inbox", cfg.Watch.Inbox, "/home/tester/output/inbox"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
		}
	}
}

func TestValidateUnknownBackendIsConfigError(t *testing.T) {
	cfg := Config{Pattern: PatternConfig{Backend: "ollama"}}
	err := cfg.Validate("/home/tester")

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Validate() error = %T, want *ConfigError", err)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
tools:
  transcript: "~/bin/yt"

pattern:
  backend: "fabric"
  binary: "/usr/local/bin/fabric"

gemini:
  model: "gemini-2.5-pro"
  patterns_dir: "~/patterns"

logging:
  level: "debug"

watch:
  inbox: "~/inbox"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pattern.Binary != "/usr/local/bin/fabric" {
		t.Errorf("Pattern.Binary = %v, want %v", cfg.Pattern.Binary, "/usr/local/bin/fabric")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want %v", cfg.Logging.Level, "debug")
	}

	cfg.ExpandPaths("/home/tester")
	if cfg.Tools.Transcript != "/home/tester/bin/yt" {
		t.Errorf("Tools.Transcript = %v, want %v", cfg.Tools.Transcript, "/home/tester/bin/yt")
	}
	if cfg.Gemini.PatternsDir != "/home/tester/patterns" {
		t.Errorf("Gemini.PatternsDir = %v, want %v", cfg.Gemini.PatternsDir, "/home/tester/patterns")
	}
	if cfg.Watch.Inbox != "/home/tester/inbox" {
		t.Errorf("Watch.Inbox = %v, want %v", cfg.Watch.Inbox, "/home/tester/inbox")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tools: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Load() error = %v, want *ConfigError", err)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")

	cfg := &Config{}
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.Gemini.APIKey != "from-dotenv" {
		t.Errorf("Gemini.APIKey = %v, want %v", cfg.Gemini.APIKey, "from-dotenv")
	}
}

func TestLoadEnvWithoutDotenv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg := &Config{}
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.Gemini.APIKey != "google-key" {
		t.Errorf("Gemini.APIKey = %v, want %v", cfg.Gemini.APIKey, "google-key")
	}
}

func TestResolveOutput(t *testing.T) {
	out, err := resolveOutput(func() (string, error) { return "/home/tester", nil })
	if err != nil {
		t.Fatalf("resolveOutput() error = %v", err)
	}
	if out.Dir != "/home/tester/output" {
		t.Errorf("Dir = %v, want %v", out.Dir, "/home/tester/output")
	}
	if out.TranscriptPath() != "/home/tester/output/transcript.txt" {
		t.Errorf("TranscriptPath() = %v", out.TranscriptPath())
	}
	if out.WisdomPath() != "/home/tester/output/wisdom.txt" {
		t.Errorf("WisdomPath() = %v", out.WisdomPath())
	}
	if out.ProjectPath() != "/home/tester/output/project.txt" {
		t.Errorf("ProjectPath() = %v", out.ProjectPath())
	}
}

func TestResolveOutputFailure(t *testing.T) {
	tests := []struct {
		name    string
		homeDir func() (string, error)
	}{
		{"home lookup fails", func() (string, error) { return "", errors.New("$HOME is not defined") }},
		{"home is empty", func() (string, error) { return "", nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := resolveOutput(tt.homeDir)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("resolveOutput() error = %v, want *ConfigError", err)
			}
			if out.Dir != "" {
				t.Errorf("Dir = %v, want empty on failure", out.Dir)
			}
		})
	}
}
