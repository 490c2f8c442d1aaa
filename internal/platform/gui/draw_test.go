package gui

import (
	"math"
	"testing"

	"github.com/vovakirdan/turtle-adventure/internal/core"
)

func TestRGBAPalette(t *testing.T) {
	tests := []struct {
		c    core.Color
		r    uint8
		g    uint8
		b    uint8
		name string
	}{
		{core.ColorRed, 220, 40, 40, "red"},
		{core.ColorGreen, 30, 160, 60, "green"},
		{core.ColorBrown, 139, 69, 19, "brown"},
		{core.ColorBlack, 0, 0, 0, "black"},
		{core.ColorPurple, 128, 0, 128, "purple"},
		{core.Color(200), 30, 30, 30, "unknown falls back to default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rgba(tc.c)
			if got.R != tc.r || got.G != tc.g || got.B != tc.b || got.A != 255 {
				t.Errorf("rgba(%v) = %+v, expected (%d, %d, %d, 255)", tc.c, got, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestEveryNamedColorHasPixelValue(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing %v", c)
		}
	}
}

func TestNormRect(t *testing.T) {
	x, y, w, h := normRect(30, 40, 10, 20)
	if x != 10 || y != 20 || w != 20 || h != 20 {
		t.Errorf("normRect() = (%v, %v, %v, %v), expected (10, 20, 20, 20)", x, y, w, h)
	}
}

func TestMarkerPointsTipFollowsHeading(t *testing.T) {
	tests := []struct {
		heading float64
		tipX    float64
		tipY    float64
	}{
		{0, 110, 100},
		{90, 100, 110},
		{180, 90, 100},
		{270, 100, 90},
	}

	for _, tc := range tests {
		pts := markerPoints(100, 100, tc.heading, 10)
		if math.Abs(float64(pts[0][0])-tc.tipX) > 1e-3 || math.Abs(float64(pts[0][1])-tc.tipY) > 1e-3 {
			t.Errorf("markerPoints(%v) tip = %v, expected (%v, %v)", tc.heading, pts[0], tc.tipX, tc.tipY)
		}
	}
}

func TestTextOriginCentres(t *testing.T) {
	x, y := textOrigin(100, 50, "You Win")
	if x != 100-7*7/2 {
		t.Errorf("textOrigin() x = %d, expected %d", x, 100-7*7/2)
	}
	if y != 50-glyphH/2+glyphAscent {
		t.Errorf("textOrigin() y = %d, expected %d", y, 50-glyphH/2+glyphAscent)
	}
}
