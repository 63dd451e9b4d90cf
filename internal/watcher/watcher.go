package watcher

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/wisdom-flow/internal/logger"
)

type implWatcher struct {
	inboxDir string
	handler  URLHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
}

// Start monitors the inbox and runs the handler for each new URL file.
// Files are handled one at a time, so runs never overlap.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started. Monitoring: %s", w.inboxDir)
	w.logger.Info(ctx, "Drop .url or .txt files containing a YouTube URL")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isURLFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-URL file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New URL file detected: %s", event.Name)

			// Small delay to ensure file is fully written
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return ctx.Err()
			}

			w.handleFile(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) handleFile(ctx context.Context, path string) {
	videoURL, err := readURL(path)
	if err != nil {
		w.logger.Error(ctx, "Failed to read %s: %v", path, err)
		return
	}
	if videoURL == "" {
		w.logger.Warn(ctx, "No URL found in %s", path)
		return
	}

	if err := w.handler(ctx, videoURL); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", videoURL, err)
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isURLFile checks if the file has a supported extension
func isURLFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".url", ".txt":
		return true
	}
	return false
}

// readURL returns the first non-blank line of path. Windows .url shortcut
// files are understood through their URL= line.
func readURL(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "[InternetShortcut]" {
			continue
		}
		return strings.TrimPrefix(line, "URL="), nil
	}
	return "", scanner.Err()
}
