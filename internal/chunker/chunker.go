// Package chunker partitions text into fixed-width pieces for pattern runs.
package chunker

// Split partitions text into contiguous chunks of at most size runes.
// Concatenating the result reproduces text exactly. Boundaries fall purely
// by position and may split words or sentences, but never a UTF-8 sequence.
// A size <= 0 yields the whole text as a single chunk. Empty text yields no chunks.
func Split(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		return []string{text}
	}

	chunks := make([]string, 0, len(text)/size+1)
	start, count := 0, 0
	for i := range text {
		if count == size {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}
