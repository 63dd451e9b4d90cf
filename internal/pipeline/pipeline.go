package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/wisdom-flow/internal/export"
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/internal/pattern"
)

// ProjectInstruction is the fixed request sent to the create_coding_project pattern.
const ProjectInstruction = "Create a full-stack web application using Python"

// Run executes every step in order. Step failures degrade and the flow
// continues; only failures that leave nothing to work with end the run early.
// A cancelled ctx stops the run before the next step, so no output written
// by an earlier run is replaced. Either way the summary and elapsed time are
// printed and the report is returned.
func (p *implPipeline) Run(ctx context.Context, videoURL string) (*Report, error) {
	startTime := time.Now()
	report := &Report{RunID: uuid.NewString(), URL: videoURL}
	ctx = logger.WithRunID(ctx, report.RunID)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting run for: %s", videoURL)
	p.logger.Info(ctx, "========================================")

	err := p.run(ctx, report)
	switch {
	case err == nil:
	case Classify(err) == KindCanceled:
		p.logger.Warn(ctx, "Run canceled: %v", err)
	default:
		p.logger.Error(ctx, "Error in main function: %v", err)
		p.printer.Errorf("Unable to complete project")
	}

	report.Elapsed = time.Since(startTime)
	p.printer.Summary(report.Rows())
	p.printer.Elapsed(report.Elapsed)

	p.logger.Info(ctx, "Run finished in %s (%d chunks, %d failed)", report.Elapsed, report.Chunks, report.FailedChunks)
	return report, err
}

func (p *implPipeline) run(ctx context.Context, report *Report) error {
	// Step 1: Resolve configuration
	out, err := p.resolve()
	if err != nil {
		p.logger.Error(ctx, "Error loading environment variables: %v", err)
		p.printer.Errorf("Unable to load environment variables")
		report.record(StepResult{Name: StepResolveConfig, Status: StatusFailed, Err: err})
		return err
	}
	report.record(StepResult{Name: StepResolveConfig, Path: out.Dir})

	// Step 2: Ensure the output directory exists
	if err := os.MkdirAll(out.Dir, 0755); err != nil {
		err = &IOError{Op: "create directory", Path: out.Dir, Err: err}
		report.record(StepResult{Name: StepEnsureOutputDir, Status: StatusFailed, Err: err})
		return err
	}
	lock, err := lockOutput(out.Dir)
	if err != nil {
		report.record(StepResult{Name: StepEnsureOutputDir, Status: StatusFailed, Err: err})
		return err
	}
	defer lock.Unlock()
	p.logger.Debug(ctx, "Ensured output directory exists: %s", out.Dir)
	report.record(StepResult{Name: StepEnsureOutputDir, Path: out.Dir})

	// Step 3: Fetch transcript, never touching the file on failure
	if err := canceled(ctx, report, StepFetchTranscript); err != nil {
		return err
	}
	fetched := p.fetchTranscript(ctx, report.URL, out.TranscriptPath())
	report.record(fetched)
	if fetched.Status == StatusCanceled {
		return fetched.Err
	}

	// Step 4: Read the transcript back, possibly stale from an earlier run
	if err := canceled(ctx, report, StepReadTranscript); err != nil {
		return err
	}
	data, err := os.ReadFile(out.TranscriptPath())
	if err != nil {
		err = &IOError{Op: "read", Path: out.TranscriptPath(), Err: err}
		report.record(StepResult{Name: StepReadTranscript, Status: StatusFailed, Err: err})
		return err
	}
	report.record(StepResult{Name: StepReadTranscript, Bytes: len(data), Path: out.TranscriptPath()})

	// Step 5: Chunk and summarize
	wisdom, step := p.extractWisdom(ctx, string(data), report)
	report.record(step)
	if step.Status == StatusCanceled {
		return step.Err
	}
	p.printer.Result("Extracted Wisdom", wisdom)

	// Step 6: Persist wisdom
	if err := canceled(ctx, report, StepPersistWisdom); err != nil {
		return err
	}
	if err := writeFile(out.WisdomPath(), wisdom); err != nil {
		report.record(StepResult{Name: StepPersistWisdom, Status: StatusFailed, Err: err})
		return err
	}
	report.record(StepResult{Name: StepPersistWisdom, Bytes: len(wisdom), Path: out.WisdomPath()})

	if p.docx {
		report.record(p.exportDocx(ctx, wisdom, out.WisdomDocxPath()))
	}

	// Step 7: Draft the project, unrelated to the transcript
	if err := canceled(ctx, report, StepDraftProject); err != nil {
		return err
	}
	project, err := p.runPattern(ctx, pattern.CreateCodingProject, ProjectInstruction)
	if ctxErr := ctx.Err(); ctxErr != nil {
		report.record(StepResult{Name: StepDraftProject, Status: StatusCanceled, Kind: KindCanceled, Err: ctxErr})
		return ctxErr
	}
	if err != nil {
		report.record(StepResult{Name: StepDraftProject, Status: StatusFailed, Err: err})
	} else {
		report.record(StepResult{Name: StepDraftProject, Bytes: len(project)})
	}
	p.printer.Result("Created Project", project)

	// Step 8: Persist the project, even when empty
	if err := canceled(ctx, report, StepPersistProject); err != nil {
		return err
	}
	if err := writeFile(out.ProjectPath(), project); err != nil {
		report.record(StepResult{Name: StepPersistProject, Status: StatusFailed, Err: err})
		return err
	}
	report.record(StepResult{Name: StepPersistProject, Bytes: len(project), Path: out.ProjectPath()})

	return nil
}

func (p *implPipeline) fetchTranscript(ctx context.Context, videoURL, path string) StepResult {
	text, err := p.fetcher.Fetch(ctx, videoURL)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return StepResult{Name: StepFetchTranscript, Status: StatusCanceled, Kind: KindCanceled, Err: ctxErr}
	}
	if err != nil {
		if output, ok := toolOutput(err); ok {
			p.logger.Error(ctx, "Failed to extract YouTube data: %s", output)
		} else {
			p.logger.Error(ctx, "Error extracting YouTube data: %v", err)
		}
		p.printer.Errorf("Unable to extract YouTube data")
		return StepResult{Name: StepFetchTranscript, Status: StatusFailed, Err: err}
	}

	p.logger.Debug(ctx, "Writing transcript to %s", path)
	if err := writeFile(path, text); err != nil {
		p.logger.Error(ctx, "Error extracting YouTube data: %v", err)
		p.printer.Errorf("Unable to extract YouTube data")
		return StepResult{Name: StepFetchTranscript, Status: StatusFailed, Err: err}
	}

	return StepResult{Name: StepFetchTranscript, Bytes: len(text), Path: path}
}

// runPattern applies a pattern and degrades to "" on failure.
// Failures caused by cancellation are left to the caller to report.
func (p *implPipeline) runPattern(ctx context.Context, name, input string) (string, error) {
	out, err := p.runner.Run(ctx, name, input)
	if err != nil && ctx.Err() != nil {
		return "", err
	}
	if err != nil {
		if output, ok := toolOutput(err); ok {
			p.logger.Error(ctx, "Failed to run Fabric pattern: %s", output)
		} else {
			p.logger.Error(ctx, "Error running Fabric pattern: %v", err)
		}
		p.printer.Errorf("Unable to run Fabric pattern")
		return "", err
	}
	return out, nil
}

func (p *implPipeline) exportDocx(ctx context.Context, wisdom, path string) StepResult {
	if err := export.WisdomDocx("Extracted Wisdom", wisdom, path); err != nil {
		err = &IOError{Op: "export", Path: path, Err: err}
		p.logger.Error(ctx, "Failed to export wisdom document: %v", err)
		p.printer.Errorf("Unable to export wisdom document")
		return StepResult{Name: StepExportDocx, Status: StatusFailed, Err: err}
	}
	info, err := os.Stat(path)
	size := 0
	if err == nil {
		size = int(info.Size())
	}
	return StepResult{Name: StepExportDocx, Bytes: size, Path: path}
}

// canceled records name as canceled and returns ctx.Err() once ctx is done.
func canceled(ctx context.Context, report *Report, name string) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	report.record(StepResult{Name: name, Status: StatusCanceled, Kind: KindCanceled, Err: err})
	return err
}

// writeFile replaces path with content.
func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
