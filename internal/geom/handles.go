package geom

// HandleSet outlines a shape's local bounding box with eight handles,
// clockwise from the top-left corner: TL, TM, TR, MR, BR, BM, BL, ML.
// Pivot is the point rotation is applied and inverted about.
type HandleSet struct {
	Points [8]Point
	Pivot  Point
}

// HandlesOf returns the handle octagon of b, pivoting on its center.
func HandlesOf(b Box) HandleSet {
	c := b.Center()
	return HandleSet{
		Points: [8]Point{
			b.Min,
			{c.X, b.Min.Y},
			{b.Max.X, b.Min.Y},
			{b.Max.X, c.Y},
			b.Max,
			{c.X, b.Max.Y},
			{b.Min.X, b.Max.Y},
			{b.Min.X, c.Y},
		},
		Pivot: c,
	}
}

// Bounds returns the box spanned by the handles.
func (h HandleSet) Bounds() Box {
	b := Box{Min: h.Points[0], Max: h.Points[0]}
	for _, p := range h.Points[1:] {
		b = b.Extend(p)
	}
	return b
}

// IsZero reports whether h carries no handles at all, as for freehand ink.
func (h HandleSet) IsZero() bool {
	return h == HandleSet{}
}
