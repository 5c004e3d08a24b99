package geom

import "math"

// Kind selects how a Geometry is painted.
type Kind uint8

const (
	KindStroke Kind = iota
	KindFill
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindFill:
		return "fill"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Geometry is the local-space content of a shape. Path is used by stroke
// and fill geometry, Text and Anchor by text geometry. Anchor is the
// left end of the text baseline.
type Geometry struct {
	Kind   Kind
	Path   Path
	Text   string
	Anchor Point
}

// Shape is what a generator produces for one pointer position: the
// geometry, its handles and the transform it is drawn with.
type Shape struct {
	Geometry  Geometry
	Handles   HandleSet
	Translate Point
	Rotation  float64
}

// Pivot returns the rotation pivot of the shape.
func (s Shape) Pivot() Point { return s.Handles.Pivot }

// Line is the newest two-point segment of a freehand stroke.
func Line(last, current Point) Shape {
	var p Path
	p.MoveTo(last)
	p.LineTo(current)
	return Shape{Geometry: Geometry{Kind: KindStroke, Path: p}}
}

// Polyline joins all points of a freehand gesture into one open path.
func Polyline(points []Point) Shape {
	var p Path
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt)
			continue
		}
		p.LineTo(pt)
	}
	return Shape{Geometry: Geometry{Kind: KindStroke, Path: p}}
}

// Arc is a circle whose diameter runs from start to current.
func Arc(start, current Point) Shape {
	center := start.Mid(current)
	r := start.Dist(current) / 2
	var p Path
	p.Arc(center, r, 0, 2*math.Pi)
	box := Box{
		Min: Point{center.X - r, center.Y - r},
		Max: Point{center.X + r, center.Y + r},
	}
	return Shape{
		Geometry: Geometry{Kind: KindStroke, Path: p},
		Handles:  HandlesOf(box),
	}
}

// Rect is the axis-aligned rectangle with corners start and current.
func Rect(start, current Point) Shape {
	d := current.Sub(start)
	var p Path
	p.Rect(start, d.X, d.Y)
	return Shape{
		Geometry: Geometry{Kind: KindStroke, Path: p},
		Handles:  HandlesOf(BoxOf(start, current)),
	}
}

// MarkSize holds the arrow head dimensions for one length bucket.
type MarkSize struct {
	W, H, Incline, Size float64
}

// MarkSizeFor buckets the head size by the absolute arrow length.
func MarkSizeFor(length float64) MarkSize {
	length = math.Abs(length)
	if length < 100 {
		h := math.Max(2, length/4)
		return MarkSize{W: 1, H: h, Incline: 2, Size: math.Max(2, h/2)}
	}
	return MarkSize{W: 4, H: 20, Incline: 4, Size: 10}
}

// MarkMetrics describes the arrow axis between two points. Distance is
// signed by Direction, which is -1 only when the arrow points left.
type MarkMetrics struct {
	Direction float64
	Distance  float64
	Angle     float64
	Size      MarkSize
}

// MeasureMark computes the arrow axis from start to current.
func MeasureMark(start, current Point) MarkMetrics {
	d := current.Sub(start)
	dir := 1.0
	if d.X < 0 {
		dir = -1
	}
	dist := dir * math.Hypot(d.X, d.Y)
	return MarkMetrics{
		Direction: dir,
		Distance:  dist,
		Angle:     math.Atan2(d.Y, d.X),
		Size:      MarkSizeFor(dist),
	}
}

// Mark is a filled arrow from start to current. The polygon lies on the
// local +x axis; the shape is translated to start and rotated by the
// arrow angle, so atan2 already points the axis at current and the
// polygon is traced with the unsigned length.
func Mark(start, current Point) Shape {
	m := MeasureMark(start, current)
	s := m.Size
	l := math.Abs(m.Distance)
	neck := l - s.H
	barb := neck - s.Incline

	var p Path
	p.MoveTo(Point{0, 0})
	p.LineTo(Point{0, -s.W / 2})
	p.LineTo(Point{neck, -s.Size})
	p.LineTo(Point{barb, -s.Size * 2})
	p.LineTo(Point{l, 0})
	p.LineTo(Point{barb, s.Size * 2})
	p.LineTo(Point{neck, s.Size})
	p.LineTo(Point{0, s.W / 2})
	p.LineTo(Point{0, 0})

	h := HandlesOf(p.Bounds())
	h.Pivot = Point{}
	return Shape{
		Geometry:  Geometry{Kind: KindFill, Path: p},
		Handles:   h,
		Translate: start,
		Rotation:  m.Angle,
	}
}

// TextIndent is the gap between the click point and the first glyph.
const TextIndent = 2

// Text places s so that it is vertically centered on at. width is the
// measured advance of s in the label font.
func Text(at Point, s string, width, fontSize float64) Shape {
	half := fontSize / 2
	box := Box{
		Min: Point{at.X, at.Y - half},
		Max: Point{at.X + width + TextIndent, at.Y + half},
	}
	return Shape{
		Geometry: Geometry{
			Kind:   KindText,
			Text:   s,
			Anchor: Point{at.X + TextIndent, at.Y + half},
		},
		Handles: HandlesOf(box),
	}
}
