package deck

import (
	"fmt"
	"regexp"
)

// EMU per inch, the unit OOXML uses for shape geometry.
const emuPerInch = 914400

// Slide geometry for a 4:3 deck, 10in x 7.5in.
const (
	SlideWidth  int64 = 10 * emuPerInch
	SlideHeight int64 = 7.5 * emuPerInch
	TitleHeight int64 = 1470025
)

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Style is the fixed look applied to every slide.
type Style struct {
	FontName        string
	FontSize        int // points
	Bold            bool
	TextColor       string // RRGGBB
	BackgroundColor string // RRGGBB
}

// DefaultStyle is bold white Helvetica on black.
func DefaultStyle() Style {
	return Style{
		FontName:        "Helvetica",
		FontSize:        50,
		Bold:            true,
		TextColor:       "FFFFFF",
		BackgroundColor: "000000",
	}
}

func (s Style) Validate() error {
	if s.FontName == "" {
		return fmt.Errorf("font name is required")
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %d", s.FontSize)
	}
	if !hexColor.MatchString(s.TextColor) {
		return fmt.Errorf("text colour %q is not RRGGBB", s.TextColor)
	}
	if !hexColor.MatchString(s.BackgroundColor) {
		return fmt.Errorf("background colour %q is not RRGGBB", s.BackgroundColor)
	}
	return nil
}

// TopOffset places the title box higher as slides carry more lines.
func TopOffset(groupSize int) int64 {
	switch groupSize {
	case 3:
		return 5 * emuPerInch / 2
	case 4:
		return 2 * emuPerInch
	default:
		return 3 * emuPerInch
	}
}

// Options controls one rendering.
type Options struct {
	Style     Style
	GroupSize int
	Title     string
}
