package watcher

import "context"

// Watcher defines the interface for inbox monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// URLHandler processes one video URL picked up from the inbox
type URLHandler func(ctx context.Context, videoURL string) error
