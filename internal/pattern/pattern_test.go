package pattern

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/wisdom-flow/internal/config"
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor"
	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor/executortest"
)

func quietLogger() logger.Logger {
	return logger.NewWithWriter("debug", io.Discard)
}

func TestFabricRun(t *testing.T) {
	fake := &executortest.Fake{Handler: func(c executortest.Call) (string, error) {
		return "WISDOM: " + c.Input, nil
	}}
	r := NewFabric(fake, "fabric", quietLogger())

	input := `it's "quoted"; $(rm -rf ~) ` + "`backticks`"
	out, err := r.Run(context.Background(), ExtractWisdom, input)
	require.NoError(t, err)
	assert.Equal(t, "WISDOM: "+input, out)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "fabric", calls[0].Name)
	assert.Equal(t, []string{"--pattern", "extract_wisdom"}, calls[0].Args)
	assert.True(t, calls[0].HasInput)
	assert.Equal(t, input, calls[0].Input)
}

func TestFabricRunExitError(t *testing.T) {
	fake := &executortest.Fake{Handler: func(c executortest.Call) (string, error) {
		return "", &executor.ExitError{Name: c.Name, ExitCode: 2, Stderr: "pattern not found"}
	}}
	r := NewFabric(fake, "", quietLogger())

	out, err := r.Run(context.Background(), "missing_pattern", "text")
	assert.Empty(t, out)

	var exitErr *executor.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "fabric", exitErr.Name)
}

func TestFabricRunInvalidUTF8(t *testing.T) {
	fake := &executortest.Fake{Handler: func(c executortest.Call) (string, error) {
		return "\xc3\x28", nil
	}}
	r := NewFabric(fake, "fabric", quietLogger())

	_, err := r.Run(context.Background(), ExtractWisdom, "text")
	assert.ErrorIs(t, err, executor.ErrInvalidUTF8)
}

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()
	log := quietLogger()

	r, err := New(ctx, &config.Config{Pattern: config.PatternConfig{Backend: "fabric", Binary: "fab"}}, &executortest.Fake{}, log)
	require.NoError(t, err)
	fr, ok := r.(*fabricRunner)
	require.True(t, ok, "want *fabricRunner, got %T", r)
	assert.Equal(t, "fab", fr.binary)

	_, err = New(ctx, &config.Config{Pattern: config.PatternConfig{Backend: "gemini"}}, &executortest.Fake{}, log)
	assert.ErrorContains(t, err, "GEMINI_API_KEY")

	_, err = New(ctx, &config.Config{Pattern: config.PatternConfig{Backend: "ollama"}}, &executortest.Fake{}, log)
	assert.ErrorContains(t, err, "unknown pattern backend")
}

type fakeModels struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func writePattern(t *testing.T, dir, name, system string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name, "system.md"), []byte(system), 0644))
}

func TestGeminiRun(t *testing.T) {
	dir := t.TempDir()
	writePattern(t, dir, ExtractWisdom, "# IDENTITY\nYou extract wisdom.")

	models := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "- insight one\n"}, {Text: "- insight two\n"}}},
		}},
	}}
	r := &geminiRunner{models: models, model: "gemini-2.5-flash", patternsDir: dir, logger: quietLogger()}

	out, err := r.Run(context.Background(), ExtractWisdom, "chunk text")
	require.NoError(t, err)
	assert.Equal(t, "- insight one\n- insight two\n", out)

	assert.Equal(t, "gemini-2.5-flash", models.model)
	require.Len(t, models.contents, 1)
	assert.Equal(t, "chunk text", models.contents[0].Parts[0].Text)
	require.NotNil(t, models.config.SystemInstruction)
	assert.Equal(t, "# IDENTITY\nYou extract wisdom.", models.config.SystemInstruction.Parts[0].Text)
}

func TestGeminiRunFailures(t *testing.T) {
	dir := t.TempDir()
	writePattern(t, dir, CreateCodingProject, "You plan projects.")

	tests := []struct {
		name    string
		pattern string
		models  *fakeModels
		wantErr string
	}{
		{"missing pattern", "nope", &fakeModels{}, "not found"},
		{"path traversal", "../etc", &fakeModels{}, "invalid pattern name"},
		{"api error", CreateCodingProject, &fakeModels{err: errors.New("429 RESOURCE_EXHAUSTED")}, "generate content"},
		{"empty response", CreateCodingProject, &fakeModels{resp: &genai.GenerateContentResponse{}}, "empty response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &geminiRunner{models: tt.models, model: "m", patternsDir: dir, logger: quietLogger()}
			out, err := r.Run(context.Background(), tt.pattern, "input")
			assert.Empty(t, out)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
