package core

// ShapeKind identifies the primitive a Shape draws.
type ShapeKind int

const (
	ShapeLine   ShapeKind = iota // Segment from (X1, Y1) to (X2, Y2)
	ShapeRect                    // Rectangle outline spanning the two corners
	ShapeOval                    // Filled ellipse inscribed in the two corners
	ShapeMarker                  // Directional marker at (X1, Y1) pointing along Heading
	ShapeText                    // Text centred on (X1, Y1)
)

// ShapeID is a handle to a shape owned by a Scene.
type ShapeID int

// Shape is one retained drawable in world coordinates.
type Shape struct {
	ID      ShapeID
	Kind    ShapeKind
	Color   Color
	X1, Y1  float64
	X2, Y2  float64
	Heading float64 // Degrees, 0 = +x, 90 = +y (screen down)
	Text    string
	Hidden  bool
}

// Scene is a retained display list. Entities create their drawables once,
// update coordinates and visibility every tick, and delete them when done.
// Platforms rasterise the visible shapes in stacking order.
type Scene struct {
	shapes map[ShapeID]*Shape
	order  []ShapeID
	next   ShapeID
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		shapes: make(map[ShapeID]*Shape),
		next:   1,
	}
}

// Create allocates a new shape on top of the stack and returns its handle.
func (s *Scene) Create(kind ShapeKind, c Color) ShapeID {
	id := s.next
	s.next++
	s.shapes[id] = &Shape{ID: id, Kind: kind, Color: c}
	s.order = append(s.order, id)
	return id
}

// CreateText allocates a text shape centred on (x, y).
func (s *Scene) CreateText(x, y float64, text string, c Color) ShapeID {
	id := s.Create(ShapeText, c)
	sh := s.shapes[id]
	sh.X1, sh.Y1, sh.X2, sh.Y2 = x, y, x, y
	sh.Text = text
	return id
}

// Coords sets the defining coordinates of a shape.
// Unknown handles are ignored.
func (s *Scene) Coords(id ShapeID, x1, y1, x2, y2 float64) {
	if sh, ok := s.shapes[id]; ok {
		sh.X1, sh.Y1, sh.X2, sh.Y2 = x1, y1, x2, y2
	}
}

// SetHeading sets the direction of a marker shape in degrees.
func (s *Scene) SetHeading(id ShapeID, deg float64) {
	if sh, ok := s.shapes[id]; ok {
		sh.Heading = deg
	}
}

// SetVisible shows or hides a shape without releasing it.
func (s *Scene) SetVisible(id ShapeID, visible bool) {
	if sh, ok := s.shapes[id]; ok {
		sh.Hidden = !visible
	}
}

// Raise moves a shape to the top of the stacking order.
func (s *Scene) Raise(id ShapeID) {
	if _, ok := s.shapes[id]; !ok {
		return
	}
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append(s.order, id)
}

// Delete releases a shape. Deleting an unknown handle is a no-op.
func (s *Scene) Delete(id ShapeID) {
	if _, ok := s.shapes[id]; !ok {
		return
	}
	delete(s.shapes, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Shape returns a copy of the shape with the given handle.
func (s *Scene) Shape(id ShapeID) (Shape, bool) {
	sh, ok := s.shapes[id]
	if !ok {
		return Shape{}, false
	}
	return *sh, true
}

// Visible returns copies of all visible shapes, bottom to top.
func (s *Scene) Visible() []Shape {
	result := make([]Shape, 0, len(s.order))
	for _, id := range s.order {
		if sh := s.shapes[id]; !sh.Hidden {
			result = append(result, *sh)
		}
	}
	return result
}

// Len returns the number of allocated shapes, hidden ones included.
func (s *Scene) Len() int {
	return len(s.shapes)
}
