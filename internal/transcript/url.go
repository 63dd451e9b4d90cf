package transcript

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned for input that is not a recognizable YouTube video URL.
var ErrInvalidURL = errors.New("not a YouTube video URL")

// ExtractVideoID returns the video id of a youtube.com/watch, youtu.be or
// youtube.com/shorts URL.
func ExtractVideoID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	path := strings.Trim(u.Path, "/")

	var id string
	switch host {
	case "youtu.be":
		id = strings.Split(path, "/")[0]
	case "youtube.com", "music.youtube.com":
		switch {
		case path == "watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"), strings.HasPrefix(path, "live/"), strings.HasPrefix(path, "embed/"):
			id = strings.Split(path, "/")[1]
		}
	}

	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	return id, nil
}

// ResolveURL turns a prompt answer into the URL to process.
// A blank answer selects fallback.
func ResolveURL(answer, fallback string) (string, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return fallback, nil
	}
	if _, err := ExtractVideoID(answer); err != nil {
		return "", err
	}
	return answer, nil
}
