package transcript

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor"
)

// Fetch runs the transcript extractor and returns its stdout verbatim.
// A non-zero exit surfaces as *executor.ExitError.
func (f *implFetcher) Fetch(ctx context.Context, videoURL string) (string, error) {
	f.logger.Debug(ctx, "Extracting YouTube data from URL: %s", videoURL)
	f.logger.Debug(ctx, "Running command: %s --transcript %s", f.binary, videoURL)

	out, err := f.executor.Execute(ctx, f.binary, "--transcript", videoURL)
	if err != nil {
		return "", fmt.Errorf("extract transcript: %w", err)
	}

	if !utf8.ValidString(out) {
		return "", fmt.Errorf("extract transcript: %w", executor.ErrInvalidUTF8)
	}

	f.logger.Debug(ctx, "Transcript extracted: %d bytes", len(out))
	return out, nil
}
