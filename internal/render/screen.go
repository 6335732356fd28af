package render

import (
	"image/color"
	"strings"
)

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Screen is a per-session double-buffer diff renderer.
type Screen struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
	blank         Cell
}

// NewScreen creates a renderer for the given terminal dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{blank: Cell{Ch: ' '}}
	s.Resize(width, height)
	return s
}

// Resize adjusts the renderer for a new terminal size and forces a full redraw.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.current = s.makeBuffer(sentinel)
	s.next = s.makeBuffer(s.blank)
	s.firstFrame = true
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

func (s *Screen) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, s.height)
	for y := 0; y < s.height; y++ {
		buf[y] = make([]Cell, s.width)
		for x := 0; x < s.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Clear fills the pending frame with blank cells of background bg.
func (s *Screen) Clear(bg color.NRGBA) {
	s.blank = Cell{Ch: ' ', BgR: bg.R, BgG: bg.G, BgB: bg.B}
	for y := range s.next {
		for x := range s.next[y] {
			s.next[y][x] = s.blank
		}
	}
}

// Blit copies a block of cells into the pending frame with its top-left at
// (row, col). Cells falling off screen are dropped.
func (s *Screen) Blit(row, col int, cells [][]Cell) {
	for dy, line := range cells {
		y := row + dy
		if y < 0 || y >= s.height {
			continue
		}
		for dx, c := range line {
			x := col + dx
			if x < 0 || x >= s.width {
				continue
			}
			s.next[y][x] = c
		}
	}
}

// WriteText writes colored text starting at (row, col) over the blank
// background. Returns the next column position.
func (s *Screen) WriteText(row, col int, text string, fg color.NRGBA, bold bool) int {
	for _, r := range text {
		if col >= s.width {
			break
		}
		if row >= 0 && row < s.height && col >= 0 {
			s.next[row][col] = Cell{Ch: r, FgR: fg.R, FgG: fg.G, FgB: fg.B,
				BgR: s.blank.BgR, BgG: s.blank.BgG, BgB: s.blank.BgB, Bold: bold}
		}
		col++
	}
	return col
}

// Flush produces the ANSI output for the pending frame, emitting only cells
// that changed since the last flush.
func (s *Screen) Flush() string {
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			nc := s.next[y][x]
			if s.firstFrame || nc != s.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Keep the flushed frame as the diff base and start the next one from it.
	for y := range s.next {
		copy(s.current[y], s.next[y])
	}
	s.firstFrame = false

	return sb.String()
}
