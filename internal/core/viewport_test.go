package core

import "testing"

func TestViewportToScreen(t *testing.T) {
	v := NewViewport(800, 500, NewRect(0, 1, 80, 20))

	tests := []struct {
		name   string
		x, y   float64
		sx, sy int
	}{
		{"origin", 0, 0, 0, 1},
		{"centre", 400, 250, 40, 11},
		{"far corner clamps", 800, 500, 79, 20},
		{"negative clamps", -50, -50, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := v.ToScreen(tc.x, tc.y)
			if sx != tc.sx || sy != tc.sy {
				t.Errorf("ToScreen(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, sx, sy, tc.sx, tc.sy)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(800, 500, NewRect(0, 1, 80, 20))

	for sy := 1; sy <= 20; sy++ {
		for sx := 0; sx < 80; sx += 7 {
			wx, wy, ok := v.ToWorld(sx, sy)
			if !ok {
				t.Fatalf("ToWorld(%d, %d) should be inside the area", sx, sy)
			}
			gx, gy := v.ToScreen(wx, wy)
			if gx != sx || gy != sy {
				t.Errorf("round trip (%d, %d) -> (%v, %v) -> (%d, %d)", sx, sy, wx, wy, gx, gy)
			}
		}
	}

	if _, _, ok := v.ToWorld(5, 0); ok {
		t.Error("ToWorld on the HUD row should report outside")
	}
}

func TestViewportDraw(t *testing.T) {
	v := NewViewport(100, 100, NewRect(0, 0, 10, 10))
	sc := NewScene()

	home := sc.Create(ShapeRect, ColorBrown)
	sc.Coords(home, 20, 20, 60, 60)

	enemy := sc.Create(ShapeOval, ColorRed)
	sc.Coords(enemy, 80, 80, 82, 82)

	marker := sc.Create(ShapeMarker, ColorGreen)
	sc.Coords(marker, 5, 5, 5, 5)
	sc.SetHeading(marker, 180)

	hidden := sc.Create(ShapeLine, ColorGreen)
	sc.Coords(hidden, 0, 90, 90, 90)
	sc.SetVisible(hidden, false)

	dst := NewScreen(10, 10)
	v.Draw(dst, sc)

	if dst.Get(2, 2) != '┌' {
		t.Errorf("home corner = %q, expected '┌'", dst.Get(2, 2))
	}
	if c := dst.GetCell(8, 8); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("enemy cell = %+v, expected red '●'", c)
	}
	if dst.Get(0, 0) != '◀' {
		t.Errorf("marker = %q, expected '◀'", dst.Get(0, 0))
	}
	if dst.Get(5, 9) != ' ' {
		t.Errorf("hidden line should not be drawn, got %q", dst.Get(5, 9))
	}
}

func TestMarkerRune(t *testing.T) {
	tests := []struct {
		deg      float64
		expected rune
	}{
		{0, '▶'},
		{90, '▼'},
		{180, '◀'},
		{270, '▲'},
		{-90, '▲'},
		{359, '▶'},
	}

	for _, tc := range tests {
		if r := markerRune(tc.deg); r != tc.expected {
			t.Errorf("markerRune(%v) = %q, expected %q", tc.deg, r, tc.expected)
		}
	}
}
