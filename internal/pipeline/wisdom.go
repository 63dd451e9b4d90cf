package pipeline

import (
	"context"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/wisdom-flow/internal/chunker"
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/internal/pattern"
)

// extractWisdom runs extract_wisdom over every chunk in order and joins the
// outputs, each followed by a newline. A failed chunk contributes only the newline.
// Cancellation stops the loop and discards the partial text.
func (p *implPipeline) extractWisdom(ctx context.Context, text string, report *Report) (string, StepResult) {
	p.logger.Debug(ctx, "Splitting transcript into chunks of size %d", p.chunkSize)
	chunks := chunker.Split(text, p.chunkSize)
	report.Chunks = len(chunks)

	var bar *progressbar.ProgressBar
	if p.progress != nil && len(chunks) > 0 {
		bar = progressbar.NewOptions(len(chunks),
			progressbar.OptionSetWriter(p.progress),
			progressbar.OptionSetDescription(pattern.ExtractWisdom),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	step := StepResult{Name: StepChunkAndSummarize}
	var wisdom strings.Builder
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			step.Status, step.Kind, step.Err = StatusCanceled, KindCanceled, err
			break
		}
		p.logger.Debug(ctx, "Processing chunk %d/%d: %s", i+1, len(chunks), logger.Truncate(chunk, 100))

		out, err := p.runPattern(ctx, pattern.ExtractWisdom, chunk)
		if ctxErr := ctx.Err(); ctxErr != nil {
			step.Status, step.Kind, step.Err = StatusCanceled, KindCanceled, ctxErr
			break
		}
		if err != nil {
			report.FailedChunks++
			step.Status = StatusDegraded
			step.Err = err
		}
		wisdom.WriteString(out)
		wisdom.WriteString("\n")

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if step.Status == StatusCanceled {
		return "", step
	}
	if len(chunks) > 0 && report.FailedChunks == len(chunks) {
		step.Status = StatusFailed
	}
	step.Bytes = wisdom.Len()
	return wisdom.String(), step
}
