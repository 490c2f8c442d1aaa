package core

import "math"

// Viewport projects world coordinates onto an area of screen cells.
// The same mapping is used in reverse to turn mouse clicks into world positions.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// NewViewport creates a viewport showing a worldW x worldH world in the given cell area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// valid reports whether the viewport can project anything.
func (v Viewport) valid() bool {
	return v.WorldW > 0 && v.WorldH > 0 && v.Area.W > 0 && v.Area.H > 0
}

// ToScreen maps a world position to a cell. The result is clamped to the area.
func (v Viewport) ToScreen(x, y float64) (int, int) {
	if !v.valid() {
		return v.Area.X, v.Area.Y
	}
	sx := int(math.Floor(x / v.WorldW * float64(v.Area.W)))
	sy := int(math.Floor(y / v.WorldH * float64(v.Area.H)))
	sx = Clamp(sx, 0, v.Area.W-1)
	sy = Clamp(sy, 0, v.Area.H-1)
	return v.Area.X + sx, v.Area.Y + sy
}

// ToWorld maps a cell to the world position at the cell's centre.
// The bool is false when the cell lies outside the area.
func (v Viewport) ToWorld(sx, sy int) (float64, float64, bool) {
	if !v.valid() || !v.Area.Contains(sx, sy) {
		return 0, 0, false
	}
	x := (float64(sx-v.Area.X) + 0.5) * v.WorldW / float64(v.Area.W)
	y := (float64(sy-v.Area.Y) + 0.5) * v.WorldH / float64(v.Area.H)
	return x, y, true
}

// Draw rasterises the visible shapes of a scene into dst.
func (v Viewport) Draw(dst *Screen, sc *Scene) {
	if !v.valid() {
		return
	}
	for _, sh := range sc.Visible() {
		switch sh.Kind {
		case ShapeLine:
			v.drawLine(dst, sh)
		case ShapeRect:
			v.drawRect(dst, sh)
		case ShapeOval:
			v.drawOval(dst, sh)
		case ShapeMarker:
			x, y := v.ToScreen(sh.X1, sh.Y1)
			dst.SetColored(x, y, markerRune(sh.Heading), sh.Color)
		case ShapeText:
			x, y := v.ToScreen(sh.X1, sh.Y1)
			dst.DrawTextColored(x-len([]rune(sh.Text))/2, y, sh.Text, sh.Color)
		}
	}
}

func (v Viewport) drawLine(dst *Screen, sh Shape) {
	x1, y1 := v.ToScreen(sh.X1, sh.Y1)
	x2, y2 := v.ToScreen(sh.X2, sh.Y2)
	dx, dy := x2-x1, y2-y1

	if dx == 0 && dy == 0 {
		dst.SetColored(x1, y1, '×', sh.Color)
		return
	}

	var r rune
	switch {
	case dx == 0:
		r = '│'
	case dy == 0:
		r = '─'
	case (dx > 0) == (dy > 0):
		r = '╲'
	default:
		r = '╱'
	}

	steps := max(Abs(dx), Abs(dy))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + int(math.Round(t*float64(dx)))
		y := y1 + int(math.Round(t*float64(dy)))
		dst.SetColored(x, y, r, sh.Color)
	}
}

func (v Viewport) drawRect(dst *Screen, sh Shape) {
	x1, y1 := v.ToScreen(math.Min(sh.X1, sh.X2), math.Min(sh.Y1, sh.Y2))
	x2, y2 := v.ToScreen(math.Max(sh.X1, sh.X2), math.Max(sh.Y1, sh.Y2))
	w, h := x2-x1+1, y2-y1+1
	if w < 2 || h < 2 {
		dst.SetColored(x1, y1, '□', sh.Color)
		return
	}
	dst.DrawBoxColored(NewRect(x1, y1, w, h), sh.Color)
}

func (v Viewport) drawOval(dst *Screen, sh Shape) {
	cx, cy := (sh.X1+sh.X2)/2, (sh.Y1+sh.Y2)/2
	rx, ry := math.Abs(sh.X2-sh.X1)/2, math.Abs(sh.Y2-sh.Y1)/2

	x1, y1 := v.ToScreen(cx-rx, cy-ry)
	x2, y2 := v.ToScreen(cx+rx, cy+ry)

	filled := false
	if rx > 0 && ry > 0 {
		for sy := y1; sy <= y2; sy++ {
			for sx := x1; sx <= x2; sx++ {
				wx, wy, ok := v.ToWorld(sx, sy)
				if !ok {
					continue
				}
				nx, ny := (wx-cx)/rx, (wy-cy)/ry
				if nx*nx+ny*ny <= 1 {
					dst.SetColored(sx, sy, '●', sh.Color)
					filled = true
				}
			}
		}
	}
	if !filled {
		x, y := v.ToScreen(cx, cy)
		dst.SetColored(x, y, '●', sh.Color)
	}
}

// markerRune picks an arrow for a heading in degrees (screen y grows downwards).
func markerRune(deg float64) rune {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	switch {
	case deg < 45 || deg >= 315:
		return '▶'
	case deg < 135:
		return '▼'
	case deg < 225:
		return '◀'
	default:
		return '▲'
	}
}
