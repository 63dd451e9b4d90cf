package pattern

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/wisdom-flow/internal/config"
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor"
)

type fabricRunner struct {
	executor executor.Executor
	binary   string
	logger   logger.Logger
}

type geminiRunner struct {
	models      contentGenerator
	model       string
	patternsDir string
	logger      logger.Logger
}

// contentGenerator is the slice of *genai.Models the gemini backend uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// New creates the Runner selected by cfg.Pattern.Backend.
func New(ctx context.Context, cfg *config.Config, exec executor.Executor, log logger.Logger) (Runner, error) {
	switch cfg.Pattern.Backend {
	case "", "fabric":
		return NewFabric(exec, cfg.Pattern.Binary, log), nil
	case "gemini":
		return NewGemini(ctx, cfg.Gemini, log)
	default:
		return nil, fmt.Errorf("unknown pattern backend: %s (supported: fabric, gemini)", cfg.Pattern.Backend)
	}
}

// NewFabric creates a Runner that pipes input into `<binary> --pattern <name>`.
func NewFabric(exec executor.Executor, binary string, log logger.Logger) Runner {
	if binary == "" {
		binary = "fabric"
	}
	return &fabricRunner{
		executor: exec,
		binary:   binary,
		logger:   log,
	}
}

// NewGemini creates a Runner that sends fabric pattern prompts to Gemini.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Runner, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini backend requires GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiRunner{
		models:      client.Models,
		model:       cfg.Model,
		patternsDir: cfg.PatternsDir,
		logger:      log,
	}, nil
}
