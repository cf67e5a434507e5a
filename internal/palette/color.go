package palette

import (
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHex reports whether s is a #rrggbb color. Alpha suffixes are not accepted.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Luminance is the WCAG relative luminance of a #rrggbb color, 0 for
// anything else.
func Luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ContrastRatio(hexFg, hexBg string) float64 {
	lumFg := Luminance(hexFg)
	lumBg := Luminance(hexBg)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}

// IsRedDominant reports whether the red channel is strictly greater than both
// green and blue.
func IsRedDominant(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	r, g, b := c.RGB255()
	return r > g && r > b
}

// IsDark uses the same 0.5 luminance split the theme type detection uses.
func IsDark(hex string) bool {
	return Luminance(hex) < 0.5
}

// ReadableOn returns black or white, whichever contrasts more with bg.
func ReadableOn(bg string) string {
	if ContrastRatio("#000000", bg) >= ContrastRatio("#ffffff", bg) {
		return "#000000"
	}
	return "#ffffff"
}

func hsl(h, s, l float64) string {
	return colorful.Hsl(math.Mod(h+360, 360), s, l).Clamped().Hex()
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
