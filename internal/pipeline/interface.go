package pipeline

import "context"

// Pipeline runs the transcript to wisdom flow for one video.
type Pipeline interface {
	Run(ctx context.Context, videoURL string) (*Report, error)
}
