package lyrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLineLength is the number of characters a line may have before it is
// wrapped onto two slide lines.
const MaxLineLength = 50

// Chunk converts raw lyric text into slide chunks of groupSize lines each.
// It runs RemoveAnnotations, WrapLongLines and Batch in that order.
// Empty input yields no chunks.
func Chunk(rawText string, groupSize int) ([]string, error) {
	if err := ValidateGroupSize(groupSize); err != nil {
		return nil, err
	}
	if rawText == "" {
		return []string{}, nil
	}

	lines := strings.Split(rawText, "\n")
	lines = RemoveAnnotations(lines)
	lines = WrapLongLines(lines)

	return Batch(lines, groupSize)
}

// RemoveAnnotations drops section markers such as "[Verse 1]": any line
// containing '[' or ']'. The remaining lines keep their order.
func RemoveAnnotations(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isAnnotation(line) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func isAnnotation(line string) bool {
	return strings.ContainsAny(line, "[]")
}

// WrapLongLines replaces every line longer than MaxLineLength characters
// with exactly two lines. Shorter lines pass through unchanged.
func WrapLongLines(lines []string) []string {
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= MaxLineLength {
			wrapped = append(wrapped, line)
			continue
		}
		first, second := splitLine(line)
		wrapped = append(wrapped, first, second)
	}
	return wrapped
}

// splitLine halves a line. A line carrying an embedded newline is cut at
// the first one and any remaining newlines are dropped; otherwise the
// words are halved, the first half getting the smaller share.
func splitLine(line string) (string, string) {
	if idx := strings.Index(line, "\n"); idx >= 0 {
		return line[:idx], strings.ReplaceAll(line[idx+1:], "\n", "")
	}

	words := strings.Split(line, " ")
	mid := len(words) / 2
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
}

// Batch groups lines into consecutive batches of groupSize and joins each
// batch with newlines. A short final batch is padded with empty lines and
// only the final chunk has its trailing whitespace removed.
func Batch(lines []string, groupSize int) ([]string, error) {
	if err := ValidateGroupSize(groupSize); err != nil {
		return nil, err
	}

	count := (len(lines) + groupSize - 1) / groupSize
	chunks := make([]string, 0, count)

	for start := 0; start < len(lines); start += groupSize {
		group := make([]string, groupSize)
		copy(group, lines[start:min(start+groupSize, len(lines))])
		chunks = append(chunks, strings.Join(group, "\n"))
	}

	if last := len(chunks) - 1; last >= 0 {
		chunks[last] = strings.TrimRightFunc(chunks[last], unicode.IsSpace)
	}

	return chunks, nil
}
