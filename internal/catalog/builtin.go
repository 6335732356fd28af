package catalog

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"creature-forge/internal/raster"
)

type builtinArt struct {
	name  string
	paint func(*painter)
}

// builtinLayers is the default art per category, cheapest first. With four
// layers per category the first two classify as common and the last two as rare.
var builtinLayers = [NumCategories][]builtinArt{
	Background: {
		{"Sky", paintSky},
		{"Space", paintSpace},
		{"Jungle", paintJungle},
		{"Inferno", paintInferno},
	},
	Body: {
		{"Human", paintHumanBody},
		{"Robot", paintRobotBody},
		{"Alien", paintAlienBody},
		{"Zombie", paintZombieBody},
	},
	Eyes: {
		{"Normal", paintNormalEyes},
		{"Laser", paintLaserEyes},
		{"Diamond", paintDiamondEyes},
		{"Fire", paintFireEyes},
	},
	Mouth: {
		{"Smile", paintSmile},
		{"Serious", paintSerious},
		{"Fangs", paintFangs},
		{"Gold", paintGoldMouth},
	},
	Hairstyle: {
		{"Bald", paintBald},
		{"Afro", paintAfro},
		{"Punk", paintPunk},
		{"Crown", paintCrown},
	},
	Accessory: {
		{"None", func(*painter) {}},
		{"Chain", paintChain},
		{"Glasses", paintGlasses},
		{"Blaster", paintBlaster},
	},
}

// BuiltinLayers returns fresh Builtin assets for every category.
func BuiltinLayers() map[Category][]Asset {
	out := make(map[Category][]Asset, NumCategories)
	for _, cat := range Categories {
		assets := make([]Asset, len(builtinLayers[cat]))
		for i, art := range builtinLayers[cat] {
			assets[i] = &Builtin{category: cat, index: i, name: art.name, paint: art.paint}
		}
		out[cat] = assets
	}
	return out
}

// painter wraps a gg context and keeps the first fill or stroke error so the
// art functions stay a flat list of shapes.
type painter struct {
	dc  *gg.Context
	err error
}

func (p *painter) keep(err error) {
	if p.err == nil {
		p.err = err
	}
}

// fill paints the current path.
func (p *painter) fill(c color.Color) {
	p.dc.SetColor(c)
	p.keep(p.dc.Fill())
}

// stroke outlines the current path.
func (p *painter) stroke(c color.Color, width float64) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.keep(p.dc.Stroke())
}

// outline fills the current path and then strokes the same path.
func (p *painter) outline(fill, line color.Color, width float64) {
	p.dc.SetColor(fill)
	p.keep(p.dc.FillPreserve())
	p.stroke(line, width)
}

func (p *painter) polygon(pts ...gg.Point) {
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
}

func (p *painter) background(c color.Color) {
	p.dc.DrawRectangle(0, 0, NativeSize, NativeSize)
	p.fill(c)
}

var (
	skin        = raster.MustHex("#ffdbac")
	skinLine    = raster.MustHex("#d4af8c")
	gold        = raster.MustHex("#ffd700")
	goldLine    = raster.MustHex("#b8860b")
	silver      = raster.MustHex("#c0c0c0")
	grey        = raster.MustHex("#808080")
	brown       = raster.MustHex("#654321")
	darkRed     = raster.MustHex("#8b0000")
	red         = raster.MustHex("#ff0000")
	green       = raster.MustHex("#00ff00")
	yellow      = raster.MustHex("#ffff00")
	magenta     = raster.MustHex("#ff00ff")
	hairBrown   = raster.MustHex("#8b4513")
	forestGreen = raster.MustHex("#006400")
)

// --- backgrounds ---

func paintSky(p *painter) {
	p.background(raster.MustHex("#87ceeb"))
}

func paintSpace(p *painter) {
	p.background(raster.MustHex("#191970"))
	stars := []struct{ x, y, r float64 }{
		{50, 50, 2}, {100, 80, 1}, {200, 60, 1.5}, {250, 100, 1}, {80, 200, 1}, {220, 220, 2},
	}
	for _, s := range stars {
		p.dc.DrawCircle(s.x, s.y, s.r)
		p.fill(raster.White)
	}
}

func paintJungle(p *painter) {
	p.background(raster.MustHex("#228b22"))
	p.dc.DrawEllipse(50, 250, 30, 60)
	p.dc.DrawEllipse(250, 280, 40, 50)
	p.fill(forestGreen)
	p.dc.DrawEllipse(150, 270, 35, 70)
	p.fill(raster.MustHex("#32cd32"))
}

func paintInferno(p *painter) {
	p.background(darkRed)
	flames := []struct {
		x, y, rx, ry float64
		c            color.NRGBA
	}{
		{100, 280, 40, 80, raster.WithAlpha(raster.MustHex("#ff4500"), 0.8)},
		{200, 290, 50, 70, raster.WithAlpha(raster.MustHex("#ff6347"), 0.7)},
		{150, 270, 30, 60, raster.WithAlpha(gold, 0.6)},
	}
	for _, f := range flames {
		p.dc.DrawEllipse(f.x, f.y, f.rx, f.ry)
		p.fill(f.c)
	}
}

// --- bodies ---

func paintHumanBody(p *painter) {
	p.dc.DrawEllipse(150, 200, 80, 100)
	p.outline(skin, skinLine, 3)
	p.dc.DrawRoundedRectangle(130, 120, 40, 80, 20)
	p.outline(skin, skinLine, 2)
}

func paintRobotBody(p *painter) {
	p.dc.DrawRoundedRectangle(100, 150, 100, 120, 10)
	p.outline(silver, grey, 3)
	p.dc.DrawRoundedRectangle(120, 120, 60, 60, 5)
	p.outline(raster.MustHex("#e0e0e0"), grey, 2)
	p.dc.DrawCircle(130, 180, 8)
	p.fill(red)
	p.dc.DrawCircle(170, 180, 8)
	p.fill(green)
}

func paintAlienBody(p *painter) {
	line := raster.MustHex("#32cd32")
	p.dc.DrawEllipse(150, 180, 60, 90)
	p.outline(raster.MustHex("#90ee90"), line, 3)
	p.dc.DrawEllipse(150, 140, 80, 60)
	p.outline(raster.MustHex("#98fb98"), line, 2)
}

func paintZombieBody(p *painter) {
	line := raster.MustHex("#556b2f")
	p.dc.DrawEllipse(150, 200, 85, 105)
	p.outline(raster.MustHex("#8fbc8f"), line, 3)
	p.dc.DrawRoundedRectangle(125, 120, 50, 85, 25)
	p.outline(raster.MustHex("#9acd32"), line, 2)
	p.dc.DrawRoundedRectangle(110, 180, 15, 30, 7)
	p.dc.DrawRoundedRectangle(175, 190, 20, 25, 10)
	p.fill(brown)
}

// --- eyes ---

func paintNormalEyes(p *painter) {
	for _, x := range []float64{130, 170} {
		p.dc.DrawEllipse(x, 150, 15, 20)
		p.outline(raster.White, raster.Black, 2)
		p.dc.DrawCircle(x, 150, 8)
		p.fill(raster.MustHex("#4169e1"))
		p.dc.DrawCircle(x+2, 147, 3)
		p.fill(raster.Black)
	}
}

func paintLaserEyes(p *painter) {
	p.dc.SetLineCap(gg.LineCapRound)
	for _, x := range []float64{130, 170} {
		p.dc.DrawEllipse(x, 150, 18, 25)
		p.outline(red, darkRed, 2)
		p.dc.DrawCircle(x, 150, 10)
		p.fill(yellow)
		p.dc.DrawLine(x, 175, x, 220)
		p.stroke(red, 4)
	}
}

func paintDiamondEyes(p *painter) {
	for _, x := range []float64{130, 170} {
		p.polygon(gg.Pt(x, 135), gg.Pt(x+15, 150), gg.Pt(x, 165), gg.Pt(x-15, 150))
		p.outline(raster.MustHex("#87ceeb"), raster.MustHex("#4682b4"), 2)
		p.polygon(gg.Pt(x, 140), gg.Pt(x+10, 150), gg.Pt(x, 160), gg.Pt(x-10, 150))
		p.fill(raster.WithAlpha(raster.White, 0.8))
	}
}

func paintFireEyes(p *painter) {
	for _, x := range []float64{130, 170} {
		p.dc.DrawEllipse(x, 150, 20, 25)
		p.outline(raster.MustHex("#ff4500"), darkRed, 2)
		p.dc.DrawEllipse(x, 150, 12, 18)
		p.fill(gold)
		p.dc.DrawEllipse(x, 150, 6, 10)
		p.fill(red)
	}
}

// --- mouths ---

func paintSmile(p *painter) {
	p.dc.SetLineCap(gg.LineCapRound)
	p.dc.MoveTo(120, 180)
	p.dc.QuadraticTo(150, 200, 180, 180)
	p.stroke(raster.Black, 3)
	for _, x := range []float64{135, 145, 155} {
		p.dc.DrawRoundedRectangle(x, 185, 8, 12, 2)
	}
	p.fill(raster.White)
}

func paintSerious(p *painter) {
	p.dc.DrawLine(130, 185, 170, 185)
	p.stroke(raster.Black, 4)
}

func paintFangs(p *painter) {
	p.dc.DrawEllipse(150, 185, 25, 15)
	p.outline(darkRed, raster.Black, 2)
	p.polygon(gg.Pt(140, 180), gg.Pt(135, 200), gg.Pt(145, 200))
	p.polygon(gg.Pt(160, 180), gg.Pt(155, 200), gg.Pt(165, 200))
	for _, x := range []float64{142, 150, 158} {
		p.dc.DrawRoundedRectangle(x, 185, 6, 8, 1)
	}
	p.fill(raster.White)
}

func paintGoldMouth(p *painter) {
	p.dc.DrawEllipse(150, 185, 20, 12)
	p.outline(gold, goldLine, 2)
	for _, x := range []float64{140, 148, 156} {
		p.dc.DrawRoundedRectangle(x, 182, 6, 8, 1)
	}
	p.fill(yellow)
}

// --- hairstyles ---

func paintBald(p *painter) {
	p.dc.DrawEllipse(150, 130, 85, 60)
	p.outline(skin, skinLine, 2)
}

func paintAfro(p *painter) {
	p.dc.DrawCircle(150, 120, 70)
	p.outline(hairBrown, brown, 2)
	puffs := []struct{ x, y, r float64 }{
		{120, 110, 25}, {180, 110, 25}, {150, 80, 30}, {130, 100, 20}, {170, 100, 20},
	}
	for _, pf := range puffs {
		p.dc.DrawCircle(pf.x, pf.y, pf.r)
	}
	p.fill(hairBrown)
}

func paintPunk(p *painter) {
	spikes := []struct {
		x, y, w, h, deg, ox, oy float64
		c                       color.NRGBA
	}{
		{140, 60, 8, 60, -10, 144, 90, magenta},
		{150, 50, 8, 70, 0, 154, 85, green},
		{160, 60, 8, 60, 10, 164, 90, magenta},
		{135, 70, 6, 50, -20, 138, 95, yellow},
		{165, 70, 6, 50, 20, 168, 95, yellow},
	}
	for _, s := range spikes {
		p.dc.Push()
		p.dc.RotateAbout(s.deg*math.Pi/180, s.ox, s.oy)
		p.dc.DrawRectangle(s.x, s.y, s.w, s.h)
		p.fill(s.c)
		p.dc.Pop()
	}
}

func paintCrown(p *painter) {
	p.polygon(
		gg.Pt(100, 120), gg.Pt(120, 90), gg.Pt(140, 100), gg.Pt(150, 80),
		gg.Pt(160, 100), gg.Pt(180, 90), gg.Pt(200, 120), gg.Pt(180, 130),
		gg.Pt(160, 125), gg.Pt(150, 130), gg.Pt(140, 125), gg.Pt(120, 130),
	)
	p.dc.SetLineJoin(gg.LineJoinRound)
	p.outline(gold, goldLine, 2)
	p.dc.DrawCircle(130, 105, 4)
	p.fill(red)
	p.dc.DrawCircle(150, 95, 5)
	p.fill(raster.MustHex("#0000ff"))
	p.dc.DrawCircle(170, 105, 4)
	p.fill(green)
}

// --- accessories ---

func paintChain(p *painter) {
	p.dc.DrawEllipse(150, 220, 30, 8)
	p.outline(silver, grey, 2)
	p.dc.DrawRoundedRectangle(145, 210, 10, 20, 2)
	p.outline(gold, goldLine, 1)
}

func paintGlasses(p *painter) {
	p.dc.DrawCircle(130, 150, 25)
	p.dc.DrawCircle(170, 150, 25)
	p.dc.DrawLine(145, 150, 155, 150)
	p.stroke(raster.Black, 3)
	p.dc.DrawLine(105, 145, 90, 140)
	p.dc.DrawLine(195, 145, 210, 140)
	p.stroke(raster.Black, 2)
}

func paintBlaster(p *painter) {
	p.dc.DrawRectangle(200, 170, 40, 8)
	p.outline(grey, raster.Black, 1)
	p.dc.DrawRectangle(230, 165, 15, 18)
	p.outline(brown, raster.Black, 1)
	p.dc.DrawCircle(205, 174, 3)
	p.fill(raster.Black)
}
