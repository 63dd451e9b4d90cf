package transcript

import "context"

// Fetcher extracts the transcript of a video with an external tool.
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) (string, error)
}
