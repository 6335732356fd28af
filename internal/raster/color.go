// Package raster holds the colour palette helpers shared by the built-in art,
// the compositor and the terminal front ends.
package raster

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// White and Black are the opaque extremes used by labels and outlines.
var (
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.NRGBA{A: 0xff}
)

// Hex parses a "#rrggbb" or "#rgb" string into an opaque colour.
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(expandShortHex(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is Hex for package-level palettes; it panics on malformed input.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced by opacity in [0, 1].
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = clampU8(opacity * 255)
	return c
}

func expandShortHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
