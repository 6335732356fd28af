// Package render turns creatures into rasters: the framed, labelled 400x400
// composite and the ANSI half-block preview used by the terminal front ends.
package render

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"creature-forge/internal/catalog"
	"creature-forge/internal/creature"
)

// Layout fixes the canvas geometry.
type Layout struct {
	Canvas int // square canvas edge in pixels
	Offset int // inset of the layer region from every edge
	Border int // rarity frame width, drawn inward from the edge
}

// DefaultLayout is a 400x400 canvas with layers scaled into the centered
// 300x300 region and an 8px frame.
var DefaultLayout = Layout{Canvas: 400, Offset: 50, Border: 8}

// LayerRect is where every layer is scaled to.
func (l Layout) LayerRect() image.Rectangle {
	return image.Rect(l.Offset, l.Offset, l.Canvas-l.Offset, l.Canvas-l.Offset)
}

// Badge geometry. Both badges share a row along the top edge.
const (
	badgeW        = 120
	badgeH        = 30
	badgeY        = 10
	badgeBaseline = 30
	rarityBadgeX  = 10
	rarityTextX   = 15
	idBadgeX      = 270
	idTextCenterX = 330
)

// Compositor draws creatures onto fresh canvases.
type Compositor struct {
	layout Layout
}

// NewCompositor returns a compositor using DefaultLayout.
func NewCompositor() *Compositor {
	return &Compositor{layout: DefaultLayout}
}

// Layout reports the geometry in use.
func (c *Compositor) Layout() Layout { return c.layout }

// Render stacks the creature's layers back to front, then adds the rarity
// frame and both badges. If any layer fails to decode, nothing drawn so far is
// kept: the placeholder is returned together with the error. The returned
// image is never nil.
func (c *Compositor) Render(cr *creature.Creature) (*image.RGBA, error) {
	l := c.layout
	layers := image.NewRGBA(image.Rect(0, 0, l.Canvas, l.Canvas))
	region := l.LayerRect()

	for _, cat := range catalog.Categories {
		t := cr.Trait(cat)
		if t == nil {
			continue
		}
		src, err := t.Asset.Decode()
		if err != nil {
			return c.Placeholder(), fmt.Errorf("render creature %d: %s layer %s: %w", cr.ID, cat, t.Asset.Name(), err)
		}
		draw.CatmullRom.Scale(layers, region, src, src.Bounds(), draw.Over, nil)
	}

	pm := gg.FromImage(layers)
	dc := gg.NewContextForPixmap(pm)
	frame := OverallColor(cr.Overall)
	var errs []error

	// Strokes straddle their path; inset by half the width.
	half := float64(l.Border) / 2
	dc.DrawRectangle(half, half, float64(l.Canvas)-2*half, float64(l.Canvas)-2*half)
	dc.SetColor(frame)
	dc.SetLineWidth(float64(l.Border))
	errs = append(errs, dc.Stroke())

	dc.DrawRectangle(rarityBadgeX, badgeY, badgeW, badgeH)
	dc.DrawRectangle(idBadgeX, badgeY, badgeW, badgeH)
	errs = append(errs, dc.Fill())

	face, err := labelFace()
	errs = append(errs, err)
	if face != nil {
		dc.SetFont(face)
		dc.SetColor(labelColor)
		dc.DrawString(strings.ToUpper(cr.Overall.String()), rarityTextX, badgeBaseline)
		drawTextCentered(dc, idTextCenterX, badgeBaseline, fmt.Sprintf("#%d", cr.ID))
	}
	errs = append(errs, dc.Close())

	if err := errors.Join(errs...); err != nil {
		return c.Placeholder(), fmt.Errorf("render creature %d: %w", cr.ID, err)
	}
	return pm.ToImage(), nil
}

// Placeholder is the flat error image shown instead of a failed composite.
func (c *Compositor) Placeholder() *image.RGBA {
	l := c.layout
	pm := gg.NewPixmap(l.Canvas, l.Canvas)
	pm.Clear(gg.FromColor(placeholderColor))
	if face, err := labelFace(); err == nil {
		dc := gg.NewContextForPixmap(pm)
		dc.SetFont(face)
		dc.SetColor(labelColor)
		dc.DrawStringAnchored("render error", float64(l.Canvas)/2, float64(l.Canvas)/2, 0.5, 0.5)
		_ = dc.Close()
	}
	return pm.ToImage()
}
