package render

import (
	"image/color"
	"math"

	"SketchBoard/internal/geom"
	"SketchBoard/internal/state"
)

// Apply sets the paint attributes of st that are set, then translates,
// then rotates. Rotation is therefore about the translated origin.
// Callers pair it with Save/Restore, see Scoped.
func Apply(s Surface, st state.Style) {
	if st.StrokeColor != nil {
		s.SetStrokeColor(st.StrokeColor)
	}
	if st.FillColor != nil {
		s.SetFillColor(st.FillColor)
	}
	if st.LineWidth > 0 {
		s.SetLineWidth(st.LineWidth)
	}
	if st.LineCap != state.CapDefault {
		s.SetLineCap(st.LineCap)
	}
	if st.Composite != state.CompositeDefault {
		s.SetComposite(st.Composite)
	}
	if !st.Font.IsZero() {
		s.SetFont(st.Font)
	}
	s.Translate(st.Translate.X, st.Translate.Y)
	if st.Rotation != 0 {
		s.Rotate(st.Rotation)
	}
}

// Scoped runs fn with st applied and restores the surface afterwards.
func Scoped(s Surface, st state.Style, fn func()) {
	s.Save()
	defer s.Restore()
	Apply(s, st)
	fn()
}

// Paint draws g in the current surface state.
func Paint(s Surface, g geom.Geometry) {
	switch g.Kind {
	case geom.KindStroke:
		s.StrokePath(g.Path)
	case geom.KindFill:
		s.FillPath(g.Path)
	case geom.KindText:
		if g.Text != "" {
			s.FillText(g.Text, g.Anchor)
		}
	}
}

// RenderPreview paints an uncommitted shape.
func RenderPreview(s Surface, g geom.Geometry, st state.Style) {
	Scoped(s, st, func() { Paint(s, g) })
}

// Replay repaints annotations bottom to top.
func Replay(s Surface, annotations []*state.Annotation) {
	for _, a := range annotations {
		RenderPreview(s, a.Geometry, a.Style)
	}
}

// HandleStyle is the look of selection handles. It never depends on the
// style of the shape being outlined.
type HandleStyle struct {
	Radius float64
	Stroke color.Color
	Fill   color.Color
}

// DefaultHandleStyle is a white marker ringed in dodger blue.
var DefaultHandleStyle = HandleStyle{
	Radius: 4,
	Stroke: color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff},
	Fill:   color.White,
}

// RenderHandles outlines the handle octagon of a shape drawn with st.
// Each of the eight handles, plus the first again to close the outline,
// gets a marker and a line to the next handle.
func RenderHandles(s Surface, h geom.HandleSet, st state.Style, hs HandleStyle) {
	frame := state.Style{
		StrokeColor: hs.Stroke,
		FillColor:   hs.Fill,
		LineWidth:   1,
		LineCap:     state.CapButt,
		Composite:   state.CompositeSourceOver,
		Translate:   st.Translate,
		Rotation:    st.Rotation,
	}
	Scoped(s, frame, func() {
		for i := 0; i <= len(h.Points); i++ {
			p := h.Points[i%len(h.Points)]
			var marker geom.Path
			marker.Arc(p, hs.Radius, 0, 2*math.Pi)
			s.FillPath(marker)
			s.StrokePath(marker)
			if i == len(h.Points) {
				break
			}
			var edge geom.Path
			edge.MoveTo(p)
			edge.LineTo(h.Points[(i+1)%len(h.Points)])
			s.StrokePath(edge)
		}
	})
}
