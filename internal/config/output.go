package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	TranscriptFile = "transcript.txt"
	WisdomFile     = "wisdom.txt"
	ProjectFile    = "project.txt"
	WisdomDocxFile = "wisdom.docx"
)

// Output is the resolved output directory for a run.
type Output struct {
	Dir string
}

// ResolveOutput returns <home>/output. It never returns a partially filled
// Output: either Dir is set or the error is a *ConfigError.
func ResolveOutput() (Output, error) {
	return resolveOutput(os.UserHomeDir)
}

func resolveOutput(homeDir func() (string, error)) (Output, error) {
	home, err := homeDir()
	if err != nil {
		return Output{}, &ConfigError{Op: "resolve output directory", Err: err}
	}
	if home == "" {
		return Output{}, &ConfigError{Op: "resolve output directory", Err: fmt.Errorf("home directory is empty")}
	}
	return Output{Dir: filepath.Join(home, outputSubdir)}, nil
}

func (o Output) TranscriptPath() string { return filepath.Join(o.Dir, TranscriptFile) }
func (o Output) WisdomPath() string     { return filepath.Join(o.Dir, WisdomFile) }
func (o Output) ProjectPath() string    { return filepath.Join(o.Dir, ProjectFile) }
func (o Output) WisdomDocxPath() string { return filepath.Join(o.Dir, WisdomDocxFile) }
