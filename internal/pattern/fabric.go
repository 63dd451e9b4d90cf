package pattern

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor"
)

// Run pipes input to the fabric CLI on stdin. Neither the pattern name nor
// the input passes through a shell.
func (r *fabricRunner) Run(ctx context.Context, pattern, input string) (string, error) {
	r.logger.Debug(ctx, "Running Fabric pattern: %s with input data: %s", pattern, logger.Truncate(input, 100))
	r.logger.Debug(ctx, "Running command: %s --pattern %s", r.binary, pattern)

	out, err := r.executor.ExecuteWithInput(ctx, input, r.binary, "--pattern", pattern)
	if err != nil {
		return "", fmt.Errorf("run pattern %s: %w", pattern, err)
	}

	if !utf8.ValidString(out) {
		return "", fmt.Errorf("run pattern %s: %w", pattern, executor.ErrInvalidUTF8)
	}

	return out, nil
}
