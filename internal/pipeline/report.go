package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/wisdom-flow/internal/console"
)

// Step names, in execution order.
const (
	StepResolveConfig     = "ResolveConfig"
	StepEnsureOutputDir   = "EnsureOutputDir"
	StepFetchTranscript   = "FetchTranscript"
	StepReadTranscript    = "ReadTranscriptFromDisk"
	StepChunkAndSummarize = "ChunkAndSummarize"
	StepPersistWisdom     = "PersistWisdom"
	StepExportDocx        = "ExportDocx"
	StepDraftProject      = "DraftProject"
	StepPersistProject    = "PersistProject"
)

type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Name   string
	Status Status
	Kind   Kind
	Err    error
	Bytes  int
	Path   string
}

// Report describes a finished run.
type Report struct {
	RunID  string
	URL    string
	Steps  []StepResult
	Chunks int
	// FailedChunks counts chunks whose pattern run failed.
	FailedChunks int
	Elapsed      time.Duration
}

// Step returns the result of the named step and whether it ran.
func (r *Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}

func (r *Report) record(s StepResult) {
	if s.Status == "" {
		s.Status = StatusOK
	}
	if s.Err != nil && s.Kind == KindNone {
		s.Kind = Classify(s.Err)
	}
	r.Steps = append(r.Steps, s)
}

// Rows converts the report to console summary rows.
func (r *Report) Rows() []console.StepRow {
	rows := make([]console.StepRow, 0, len(r.Steps))
	for _, s := range r.Steps {
		rows = append(rows, console.StepRow{
			Step:   s.Name,
			Status: string(s.Status),
			Kind:   string(s.Kind),
			Bytes:  s.Bytes,
			Path:   s.Path,
		})
	}
	return rows
}
