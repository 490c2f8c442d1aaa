package turtle

import "math"

// Pen is a position with a heading, moved by turning and stepping forward.
// Headings are in degrees: 0 points along +x, 90 along +y (down the screen).
type Pen struct {
	X, Y    float64
	Heading float64
}

// Goto places the pen at (x, y) without changing its heading.
func (p *Pen) Goto(x, y float64) {
	p.X, p.Y = x, y
}

// Towards returns the heading from the pen to (x, y).
func (p *Pen) Towards(x, y float64) float64 {
	deg := math.Atan2(y-p.Y, x-p.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SetHeading points the pen in the given direction.
func (p *Pen) SetHeading(deg float64) {
	p.Heading = math.Mod(deg, 360)
}

// Forward moves the pen d units along its heading.
func (p *Pen) Forward(d float64) {
	rad := p.Heading * math.Pi / 180
	p.X += d * math.Cos(rad)
	p.Y += d * math.Sin(rad)
}

// Distance returns the euclidean distance from the pen to (x, y).
func (p *Pen) Distance(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}
