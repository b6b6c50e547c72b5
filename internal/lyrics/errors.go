package lyrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Group sizes the slide layouts support.
const (
	MinGroupSize = 1
	MaxGroupSize = 4
)

// ErrInvalidGroupSize is returned for a group size outside MinGroupSize..MaxGroupSize
// or one that is not a number.
var ErrInvalidGroupSize = errors.New("invalid group size")

// ValidateGroupSize reports whether n lines per slide is a usable setting.
func ValidateGroupSize(n int) error {
	if n < MinGroupSize || n > MaxGroupSize {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidGroupSize, n, MinGroupSize, MaxGroupSize)
	}
	return nil
}

// ParseGroupSize parses a group size as typed by a user.
func ParseGroupSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidGroupSize, s)
	}
	if err := ValidateGroupSize(n); err != nil {
		return 0, err
	}
	return n, nil
}
