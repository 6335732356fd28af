package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"creature-forge/internal/creature"
)

// FileName is the download name for a rendered creature.
func FileName(c *creature.Creature) string {
	return fmt.Sprintf("creature-%d-%s.png", c.ID, c.Overall)
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
