package server

import (
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"creature-forge/internal/catalog"
	"creature-forge/internal/creature"
	"creature-forge/internal/raster"
	"creature-forge/internal/rarity"
	"creature-forge/internal/render"
)

const (
	historyLimit = 20
	infoWidth    = 36
)

var (
	screenBG  = raster.MustHex("#111827")
	textColor = raster.MustHex("#e5e7eb")
	dimColor  = raster.MustHex("#9ca3af")
)

// session is the per-connection state: its own factory, history of viewed
// creatures and the latest collection summary.
type session struct {
	lib         *Library
	factory     *creature.Factory
	compositor  *render.Compositor
	collection  int
	previewCols int

	lastID  int64
	history []*creature.Creature
	current *creature.Creature
	image   *image.RGBA
	status  string
	summary []string
	version uint64
}

func newSession(lib *Library, seed int64, collection, previewCols int) *session {
	return &session{
		lib:         lib,
		factory:     creature.NewSeededFactory(seed),
		compositor:  render.NewCompositor(),
		collection:  collection,
		previewCols: previewCols,
		version:     lib.Version(),
	}
}

// nextID is the current time in nanoseconds, bumped when the clock has not
// advanced since the previous creature.
func (s *session) nextID() int64 {
	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *session) generate() {
	cat, table := s.lib.Snapshot()
	if s.current != nil {
		s.history = append(s.history, s.current)
		if len(s.history) > historyLimit {
			s.history = s.history[len(s.history)-historyLimit:]
		}
	}
	s.show(s.factory.Create(s.nextID(), cat, table))
}

func (s *session) previous() {
	if len(s.history) == 0 {
		s.status = "no earlier creature"
		return
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.show(last)
}

func (s *session) show(c *creature.Creature) {
	s.current = c
	img, err := s.compositor.Render(c)
	s.image = img
	s.status = ""
	if err != nil {
		log.Printf("Warning: %v", err)
		s.status = "render failed, showing placeholder"
	}
}

func (s *session) buildCollection() {
	cat, table := s.lib.Snapshot()
	start := time.Now()
	col := s.factory.Build(s.collection, cat, table)
	tally := col.Tally()

	s.summary = s.summary[:0]
	s.summary = append(s.summary, fmt.Sprintf("Collection of %s built in %s",
		humanize.Comma(int64(len(col))), time.Since(start).Round(time.Millisecond)))
	for _, o := range rarity.Overalls {
		if n := tally[o]; n > 0 {
			s.summary = append(s.summary, fmt.Sprintf("  %-10s %4d", o, n))
		}
	}
	s.summary = append(s.summary, fmt.Sprintf("  duplicates %4d", col.Duplicates()))
}

// noteReload records that the shared library changed since the last frame.
func (s *session) noteReload() bool {
	v := s.lib.Version()
	if v == s.version {
		return false
	}
	s.version = v
	s.status = "layers or weights reloaded"
	return true
}

// draw fills the screen's pending frame and returns the ANSI diff.
func (s *session) draw(scr *render.Screen) string {
	w, h := scr.Size()
	scr.Clear(screenBG)

	cols := min(s.previewCols, w-infoWidth-3, 2*(h-2))
	if cols < 8 {
		scr.WriteText(0, 0, "terminal too small", textColor, true)
		return scr.Flush()
	}
	if s.image != nil {
		scr.Blit(1, 1, render.HalfBlockCells(s.image, cols))
	}

	col := cols + 3
	row := 1
	line := func(text string, tier rarity.Tier, bold bool) {
		scr.WriteText(row, col, text, render.TierColor(tier), bold)
		row++
	}
	text := func(text string, bold bool) {
		scr.WriteText(row, col, text, textColor, bold)
		row++
	}

	if c := s.current; c != nil {
		text(fmt.Sprintf("Creature #%d", c.ID), true)
		scr.WriteText(row, col, strings.ToUpper(c.Overall.String()), render.OverallColor(c.Overall), true)
		scr.WriteText(row, col+11, fmt.Sprintf("score %d", c.Score()), dimColor, false)
		row += 2
		for _, cat := range catalog.Categories {
			t := c.Trait(cat)
			if t == nil {
				scr.WriteText(row, col, fmt.Sprintf("%-10s -", cat), dimColor, false)
				row++
				continue
			}
			line(fmt.Sprintf("%-10s %-9s %s", cat, t.Asset.Name(), t.Tier), t.Tier, false)
		}
		row++
	} else {
		text("Press g to forge a creature", true)
		row++
	}

	for _, l := range s.summary {
		text(l, false)
	}
	if len(s.summary) > 0 {
		row++
	}
	if s.status != "" {
		scr.WriteText(row, col, s.status, dimColor, false)
	}
	scr.WriteText(h-1, col, "g new  b back  c collection  q quit", dimColor, false)
	return scr.Flush()
}
