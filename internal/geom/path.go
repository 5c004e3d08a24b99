package geom

import "math"

// Verb identifies a path command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbArc
	VerbRect
	VerbClose
)

func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "moveTo"
	case VerbLineTo:
		return "lineTo"
	case VerbArc:
		return "arc"
	case VerbRect:
		return "rect"
	case VerbClose:
		return "close"
	}
	return "unknown"
}

// Cmd is a single path command. Pt is the target of moveTo/lineTo, the
// center of an arc and the origin of a rect.
type Cmd struct {
	Verb       Verb
	Pt         Point
	Radius     float64
	Start, End float64
	W, H       float64
}

// Path is an ordered list of commands in local space.
type Path []Cmd

func (p *Path) MoveTo(pt Point) { *p = append(*p, Cmd{Verb: VerbMoveTo, Pt: pt}) }
func (p *Path) LineTo(pt Point) { *p = append(*p, Cmd{Verb: VerbLineTo, Pt: pt}) }
func (p *Path) Close() { *p = append(*p, Cmd{Verb: VerbClose}) }

// Arc adds a clockwise arc around center from angle start to end.
func (p *Path) Arc(center Point, r, start, end float64) {
	*p = append(*p, Cmd{Verb: VerbArc, Pt: center, Radius: r, Start: start, End: end})
}

// Rect adds a closed rectangle subpath. Negative sizes are allowed.
func (p *Path) Rect(origin Point, w, h float64) {
	*p = append(*p, Cmd{Verb: VerbRect, Pt: origin, W: w, H: h})
}

// arcStep is the maximum angle covered by one flattened arc segment.
const arcStep = math.Pi / 32

// ArcPoints flattens an arc command into points from its start angle to
// its end angle.
func (c Cmd) ArcPoints() []Point {
	sweep := c.End - c.Start
	n := int(math.Ceil(math.Abs(sweep)/arcStep - 1e-9))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := c.Start + sweep*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		pts = append(pts, Point{c.Pt.X + c.Radius*cos, c.Pt.Y + c.Radius*sin})
	}
	return pts
}

// Flatten converts the path into polygonal subpaths. Arcs become line
// segments, rects become four-corner subpaths.
func (p Path) Flatten() [][]Point {
	var (
		subs [][]Point
		cur  []Point
	)
	flush := func() {
		if len(cur) > 0 {
			subs = append(subs, cur)
		}
		cur = nil
	}
	for _, c := range p {
		switch c.Verb {
		case VerbMoveTo:
			flush()
			cur = []Point{c.Pt}
		case VerbLineTo:
			cur = append(cur, c.Pt)
		case VerbArc:
			cur = append(cur, c.ArcPoints()...)
		case VerbRect:
			flush()
			o := c.Pt
			subs = append(subs, []Point{
				o,
				{o.X + c.W, o.Y},
				{o.X + c.W, o.Y + c.H},
				{o.X, o.Y + c.H},
			})
			cur = []Point{o}
		case VerbClose:
			if len(cur) > 0 {
				first := cur[0]
				flush()
				cur = []Point{first}
			}
		}
	}
	flush()
	return subs
}

// Contains reports whether pt lies in the fill region of the path using
// the nonzero winding rule. Every subpath is implicitly closed, so stroked
// outlines test their enclosed area.
func (p Path) Contains(pt Point) bool {
	wn := 0
	for _, sub := range p.Flatten() {
		if len(sub) < 3 {
			continue
		}
		for i := range sub {
			a, b := sub[i], sub[(i+1)%len(sub)]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && isLeft(a, b, pt) > 0 {
					wn++
				}
			} else if b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
				wn--
			}
		}
	}
	return wn != 0
}

func isLeft(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// Bounds returns the axis-aligned bounding box of the flattened path.
// An empty path yields the zero Box.
func (p Path) Bounds() Box {
	var (
		b     Box
		first = true
	)
	for _, sub := range p.Flatten() {
		for _, q := range sub {
			if first {
				b = Box{Min: q, Max: q}
				first = false
				continue
			}
			b = b.Extend(q)
		}
	}
	return b
}

// Box is an axis-aligned rectangle with Min <= Max.
type Box struct {
	Min, Max Point
}

// BoxOf returns the normalized box spanned by two corners.
func BoxOf(a, b Point) Box {
	return Box{
		Min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

func (b Box) Extend(p Point) Box {
	return Box{
		Min: Point{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)},
		Max: Point{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)},
	}
}

func (b Box) Width() float64 { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }
func (b Box) Center() Point { return b.Min.Mid(b.Max) }

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
