package analysis

// DefaultChunkSize is the character count above which file content is split
// into fixed-size windows, and the window size used for the split.
const DefaultChunkSize = 2000

// Split cuts text into contiguous, non-overlapping windows of at most size
// characters, in left-to-right order. The final window may be shorter.
// Concatenating the result reproduces the input exactly. Empty text yields
// nil.
//
// The split is character-blind on purpose: it does not respect token, line,
// or block boundaries, and downstream prompts expect these raw slices.
func Split(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// NeedsChunking reports whether text exceeds the chunking threshold.
// Content exactly at the threshold is analyzed as a single unit.
func NeedsChunking(text string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultChunkSize
	}
	return len([]rune(text)) > threshold
}
