package render

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// halfBlock draws the upper pixel in the foreground and the lower pixel in
// the background, so one terminal cell shows two square-ish pixels.
const halfBlock = '▀'

// HalfBlockCells samples img into a grid cols cells wide. Each cell covers one
// pixel column and two pixel rows of the scaled image. Transparent areas come
// out black.
func HalfBlockCells(img image.Image, cols int) [][]Cell {
	b := img.Bounds()
	if cols <= 0 || b.Empty() {
		return nil
	}
	rows := (cols*b.Dy()/b.Dx() + 1) / 2
	if rows < 1 {
		rows = 1
	}
	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	cells := make([][]Cell, rows)
	for row := range cells {
		line := make([]Cell, cols)
		for col := range line {
			// Premultiplied values are the colour composited over black.
			top := small.RGBAAt(col, row*2)
			bot := small.RGBAAt(col, row*2+1)
			line[col] = Cell{
				Ch:  halfBlock,
				FgR: top.R, FgG: top.G, FgB: top.B,
				BgR: bot.R, BgG: bot.G, BgB: bot.B,
			}
		}
		cells[row] = line
	}
	return cells
}

// HalfBlocks renders img as true-colour ANSI text, one line per cell row.
func HalfBlocks(img image.Image, cols int) string {
	var sb strings.Builder
	for _, line := range HalfBlockCells(img, cols) {
		for _, c := range line {
			WriteCellSGR(&sb, c)
		}
		sb.WriteString(Reset)
		sb.WriteByte('\n')
	}
	return sb.String()
}
