package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nguyentantai21042004/wisdom-flow/internal/config"
	"github.com/nguyentantai21042004/wisdom-flow/internal/console"
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/internal/pattern"
	"github.com/nguyentantai21042004/wisdom-flow/internal/pipeline"
	"github.com/nguyentantai21042004/wisdom-flow/internal/transcript"
	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor"
)

type app struct {
	cfg      *config.Config
	logger   logger.Logger
	printer  *console.Printer
	pipeline pipeline.Pipeline
}

// loadConfig reads, expands and validates settings. Without a home
// directory the default settings file is skipped and defaults apply; the
// pipeline reports the missing home when it resolves the output directory.
func loadConfig() (*config.Config, error) {
	home, homeErr := os.UserHomeDir()
	if homeErr != nil {
		home = ""
	}

	var err error
	path := rootFlags.configPath
	if path == "" && homeErr == nil {
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	cfg := &config.Config{}
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	cfg.ExpandPaths(home)
	if err := cfg.Validate(home); err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if rootFlags.logLevel != "" {
		cfg.Logging.Level = rootFlags.logLevel
	}
	return cfg, nil
}

// newApp wires the pipeline and its collaborators.
func newApp(ctx context.Context, stdout io.Writer, docx bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)
	if _, err := os.UserHomeDir(); err != nil {
		log.Warn(ctx, "No home directory, using default settings: %v", err)
	}
	printer := console.New(stdout)
	exec := executor.New()

	runner, err := pattern.New(ctx, cfg, exec, log)
	if err != nil {
		return nil, fmt.Errorf("init pattern runner: %w", err)
	}

	var progress io.Writer
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		progress = os.Stderr
	}

	return &app{
		cfg:     cfg,
		logger:  log,
		printer: printer,
		pipeline: pipeline.New(pipeline.Deps{
			Fetcher:  transcript.New(exec, cfg.Tools.Transcript, log),
			Runner:   runner,
			Printer:  printer,
			Logger:   log,
			Progress: progress,
			Docx:     docx,
		}),
	}, nil
}
