package pattern

import "context"

const (
	// ExtractWisdom summarizes one transcript chunk.
	ExtractWisdom = "extract_wisdom"
	// CreateCodingProject drafts a project description.
	CreateCodingProject = "create_coding_project"
)

// Runner applies a named text-transformation pattern to input.
type Runner interface {
	Run(ctx context.Context, pattern, input string) (string, error)
}
