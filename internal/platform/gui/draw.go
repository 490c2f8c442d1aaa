package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/turtle-adventure/internal/core"
)

// Glyph metrics of basicfont.Face7x13.
const (
	glyphW      = 7
	glyphAscent = 11
	glyphH      = 13
)

const (
	lineWidth  = 2
	markerSize = 10
)

var background = color.RGBA{R: 245, G: 245, B: 240, A: 255}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 30, G: 30, B: 30, A: 255},
	core.ColorRed:     {R: 220, G: 40, B: 40, A: 255},
	core.ColorGreen:   {R: 30, G: 160, B: 60, A: 255},
	core.ColorYellow:  {R: 230, G: 190, B: 20, A: 255},
	core.ColorBlue:    {R: 40, G: 80, B: 220, A: 255},
	core.ColorMagenta: {R: 200, G: 40, B: 200, A: 255},
	core.ColorCyan:    {R: 20, G: 180, B: 200, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorBlack:   {R: 0, G: 0, B: 0, A: 255},
	core.ColorPurple:  {R: 128, G: 0, B: 128, A: 255},
	core.ColorBrown:   {R: 139, G: 69, B: 19, A: 255},
	core.ColorOrange:  {R: 255, G: 140, B: 0, A: 255},
	core.ColorGray:    {R: 128, G: 128, B: 128, A: 255},
}

// rgba maps a palette color to its pixel value.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

func drawScene(dst *ebiten.Image, sc *core.Scene) {
	if sc == nil {
		return
	}
	for _, sh := range sc.Visible() {
		drawShape(dst, sh)
	}
}

func drawShape(dst *ebiten.Image, sh core.Shape) {
	clr := rgba(sh.Color)

	switch sh.Kind {
	case core.ShapeLine:
		vector.StrokeLine(dst, float32(sh.X1), float32(sh.Y1), float32(sh.X2), float32(sh.Y2), lineWidth, clr, true)

	case core.ShapeRect:
		x, y, w, h := normRect(sh.X1, sh.Y1, sh.X2, sh.Y2)
		vector.StrokeRect(dst, x, y, w, h, lineWidth, clr, true)

	case core.ShapeOval:
		x, y, w, h := normRect(sh.X1, sh.Y1, sh.X2, sh.Y2)
		r := min(w, h) / 2
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, r, clr, true)

	case core.ShapeMarker:
		pts := markerPoints(sh.X1, sh.Y1, sh.Heading, markerSize)
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(dst, a[0], a[1], b[0], b[1], lineWidth, clr, true)
		}
		vector.DrawFilledCircle(dst, float32(sh.X1), float32(sh.Y1), markerSize/3, clr, true)

	case core.ShapeText:
		x, y := textOrigin(sh.X1, sh.Y1, sh.Text)
		text.Draw(dst, sh.Text, basicfont.Face7x13, x, y, clr)
	}
}

// normRect turns two corners into an origin and positive extent.
func normRect(x1, y1, x2, y2 float64) (x, y, w, h float32) {
	return float32(math.Min(x1, x2)), float32(math.Min(y1, y2)),
		float32(math.Abs(x2 - x1)), float32(math.Abs(y2 - y1))
}

// markerPoints returns the triangle of a marker at (x, y) pointing along
// heading degrees, with the tip size pixels ahead of the centre.
func markerPoints(x, y, heading, size float64) [3][2]float32 {
	var pts [3][2]float32
	for i, off := range [3]float64{0, 140, -140} {
		rad := (heading + off) * math.Pi / 180
		r := size
		if off != 0 {
			r = size * 0.7
		}
		pts[i] = [2]float32{
			float32(x + r*math.Cos(rad)),
			float32(y + r*math.Sin(rad)),
		}
	}
	return pts
}

// textOrigin returns the baseline origin that centres s on (cx, cy).
func textOrigin(cx, cy float64, s string) (int, int) {
	w := len([]rune(s)) * glyphW
	return int(math.Round(cx)) - w/2, int(math.Round(cy)) - glyphH/2 + glyphAscent
}

func drawHUD(dst *ebiten.Image, st core.GameState, tickRate int) {
	if tickRate <= 0 {
		tickRate = 60
	}
	hud := rgba(core.ColorDefault)

	left := fmt.Sprintf("Level: %d   Enemies: %d", st.Level, st.Enemies)
	text.Draw(dst, left, basicfont.Face7x13, 8, 8+glyphAscent, hud)

	clock := fmt.Sprintf("Time: %.1fs", float64(st.Tick)/float64(tickRate))
	w := dst.Bounds().Dx()
	text.Draw(dst, clock, basicfont.Face7x13, w-8-len(clock)*glyphW, 8+glyphAscent, hud)

	var status string
	switch {
	case st.GameOver:
		status = "R restart   Q quit"
	case st.Paused:
		status = "PAUSED   P resume   Esc quit"
	case st.Tick == 0:
		status = "Click to move"
	}
	if status != "" {
		h := dst.Bounds().Dy()
		x, y := textOrigin(float64(w)/2, float64(h-16), status)
		text.Draw(dst, status, basicfont.Face7x13, x, y, rgba(core.ColorGray))
	}
}

func drawError(dst *ebiten.Image, err error) {
	b := dst.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	for i, line := range []string{"Cannot start game", err.Error()} {
		x, y := textOrigin(cx, cy+float64(i*2*glyphH), line)
		text.Draw(dst, line, basicfont.Face7x13, x, y, rgba(core.ColorRed))
	}
}
