package imaging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string is not exactly six hex digits.
var ErrInvalidColor = errors.New("invalid color")

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex formats the color as "#RRGGBB".
func (c RGBColor) Hex() string {
	return strings.ToUpper(c.toColorful().Hex())
}

func (c RGBColor) String() string {
	return c.Hex()
}

func (c RGBColor) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseHexColor parses a color written as six hex digits, with or without a
// leading '#'. Upper and lower case digits are both accepted.
//
// Examples:
//   - "#FF0000" -> {255, 0, 0}
//   - "00ff00"  -> {0, 255, 0}
//
// Any other form, including the 3-digit shorthand, fails with ErrInvalidColor.
func ParseHexColor(s string) (RGBColor, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGBColor{}, fmt.Errorf("%w %q: want 6 hex digits, got %d", ErrInvalidColor, s, len(digits))
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGBColor{}, fmt.Errorf("%w %q: %q is not a hex digit", ErrInvalidColor, s, digits[i])
		}
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}

	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
