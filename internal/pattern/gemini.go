package pattern

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
)

// Run loads <patternsDir>/<pattern>/system.md and asks Gemini to apply it to input.
func (r *geminiRunner) Run(ctx context.Context, pattern, input string) (string, error) {
	system, err := r.loadPattern(pattern)
	if err != nil {
		return "", err
	}

	r.logger.Debug(ctx, "Running Gemini pattern: %s (%s) with input data: %s", pattern, r.model, logger.Truncate(input, 100))

	result, err := r.models.GenerateContent(ctx, r.model, genai.Text(input), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("run pattern %s: generate content: %w", pattern, err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("run pattern %s: empty response from Gemini", pattern)
}

func (r *geminiRunner) loadPattern(pattern string) (string, error) {
	if pattern == "" || strings.ContainsAny(pattern, `/\`) || pattern == "." || pattern == ".." {
		return "", fmt.Errorf("invalid pattern name: %q", pattern)
	}

	path := filepath.Join(r.patternsDir, pattern, "system.md")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("pattern %s not found in %s", pattern, r.patternsDir)
		}
		return "", fmt.Errorf("read pattern %s: %w", pattern, err)
	}
	return string(data), nil
}
