package processor

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/lyric-deck/internal/lyrics"
)

// A first line like "# group: 3" overrides the configured group size.
var reGroupDirective = regexp.MustCompile(`(?i)^#\s*group\s*:\s*(.*?)\s*$`)

// parseDirective returns the group size to use and the text without the
// directive line. Text without a directive is returned unchanged.
func parseDirective(text string, fallback int) (int, string, error) {
	first, rest, found := strings.Cut(text, "\n")

	m := reGroupDirective.FindStringSubmatch(first)
	if m == nil {
		return fallback, text, nil
	}

	n, err := lyrics.ParseGroupSize(m[1])
	if err != nil {
		return 0, "", err
	}

	if !found {
		rest = ""
	}
	return n, rest, nil
}
