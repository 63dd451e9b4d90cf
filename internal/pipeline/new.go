package pipeline

import (
	"io"

	"github.com/nguyentantai21042004/wisdom-flow/internal/config"
	"github.com/nguyentantai21042004/wisdom-flow/internal/console"
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/internal/pattern"
	"github.com/nguyentantai21042004/wisdom-flow/internal/transcript"
)

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Fetcher transcript.Fetcher
	Runner  pattern.Runner
	Printer *console.Printer
	Logger  logger.Logger

	// Resolve locates the output directory. Defaults to config.ResolveOutput.
	Resolve func() (config.Output, error)
	// ChunkSize defaults to config.ChunkSize.
	ChunkSize int
	// Progress receives a chunk progress bar when non-nil.
	Progress io.Writer
	// Docx also renders wisdom.docx.
	Docx bool
}

type implPipeline struct {
	fetcher   transcript.Fetcher
	runner    pattern.Runner
	printer   *console.Printer
	logger    logger.Logger
	resolve   func() (config.Output, error)
	chunkSize int
	progress  io.Writer
	docx      bool
}

// New creates a new Pipeline instance
func New(d Deps) Pipeline {
	p := &implPipeline{
		fetcher:   d.Fetcher,
		runner:    d.Runner,
		printer:   d.Printer,
		logger:    d.Logger,
		resolve:   d.Resolve,
		chunkSize: d.ChunkSize,
		progress:  d.Progress,
		docx:      d.Docx,
	}
	if p.resolve == nil {
		p.resolve = config.ResolveOutput
	}
	if p.chunkSize <= 0 {
		p.chunkSize = config.ChunkSize
	}
	return p
}
