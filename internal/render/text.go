package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

const labelSize = 14

// labelFace is the bold face used for badge and placeholder labels.
var labelFace = sync.OnceValues(func() (text.Face, error) {
	src, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return src.Face(labelSize), nil
})

// drawTextCentered writes s horizontally centered on cx.
func drawTextCentered(dc *gg.Context, cx, baseline float64, s string) {
	w, _ := dc.MeasureString(s)
	dc.DrawString(s, cx-w/2, baseline)
}
