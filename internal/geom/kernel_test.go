package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestMarkSizeBuckets(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		want   MarkSize
	}{
		{"short", 50, MarkSize{W: 1, H: 12.5, Incline: 2, Size: 6.25}},
		{"tiny clamps to minimum", 4, MarkSize{W: 1, H: 2, Incline: 2, Size: 2}},
		{"zero", 0, MarkSize{W: 1, H: 2, Incline: 2, Size: 2}},
		{"negative uses magnitude", -50, MarkSize{W: 1, H: 12.5, Incline: 2, Size: 6.25}},
		{"boundary is fixed", 100, MarkSize{W: 4, H: 20, Incline: 4, Size: 10}},
		{"long", 200, MarkSize{W: 4, H: 20, Incline: 4, Size: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkSizeFor(tt.length))
		})
	}
}

func TestMeasureMark(t *testing.T) {
	m := MeasureMark(Pt(0, 0), Pt(50, 0))
	assert.Equal(t, 1.0, m.Direction)
	assert.Equal(t, 50.0, m.Distance)
	assert.Equal(t, 0.0, m.Angle)
	assert.Equal(t, MarkSize{W: 1, H: 12.5, Incline: 2, Size: 6.25}, m.Size)

	m = MeasureMark(Pt(0, 0), Pt(200, 0))
	assert.Equal(t, MarkSize{W: 4, H: 20, Incline: 4, Size: 10}, m.Size)

	m = MeasureMark(Pt(10, 10), Pt(-20, 50))
	assert.Equal(t, -1.0, m.Direction)
	assert.InDelta(t, -50, m.Distance, eps)
	assert.InDelta(t, math.Atan2(40, -30), m.Angle, eps)
}

func TestMarkAngleAllQuadrants(t *testing.T) {
	for _, end := range []Point{Pt(30, 40), Pt(-30, 40), Pt(-30, -40), Pt(30, -40), Pt(0, 50), Pt(0, -50)} {
		s := Mark(Pt(0, 0), end)
		// The tip of the arrow, transformed to surface space, lands on the end point.
		tip := s.Geometry.Path[4].Pt
		m := Translate(s.Translate.X, s.Translate.Y).Mul(Rotate(s.Rotation))
		got := m.Apply(tip)
		assert.InDelta(t, end.X, got.X, 1e-6, "end %v", end)
		assert.InDelta(t, end.Y, got.Y, 1e-6, "end %v", end)
	}
}

func TestMarkPolygon(t *testing.T) {
	s := Mark(Pt(5, 5), Pt(55, 5))
	require.Equal(t, KindFill, s.Geometry.Kind)
	require.Len(t, s.Geometry.Path, 9)
	assert.Equal(t, Pt(5, 5), s.Translate)
	assert.Equal(t, Point{}, s.Pivot())

	want := []Point{
		{0, 0}, {0, -0.5}, {37.5, -6.25}, {35.5, -12.5}, {50, 0},
		{35.5, 12.5}, {37.5, 6.25}, {0, 0.5}, {0, 0},
	}
	for i, c := range s.Geometry.Path {
		assert.InDelta(t, want[i].X, c.Pt.X, eps, "vertex %d", i)
		assert.InDelta(t, want[i].Y, c.Pt.Y, eps, "vertex %d", i)
	}
	b := s.Handles.Bounds()
	assert.Equal(t, Pt(0, -12.5), b.Min)
	assert.Equal(t, Pt(50, 12.5), b.Max)
}

func TestArc(t *testing.T) {
	s := Arc(Pt(0, 0), Pt(20, 0))
	require.Len(t, s.Geometry.Path, 1)
	c := s.Geometry.Path[0]
	assert.Equal(t, VerbArc, c.Verb)
	assert.Equal(t, Pt(10, 0), c.Pt)
	assert.InDelta(t, 10, c.Radius, eps)
	assert.Equal(t, Pt(10, 0), s.Pivot())
	assert.Equal(t, Box{Min: Pt(0, -10), Max: Pt(20, 10)}, s.Handles.Bounds())
	assert.True(t, s.Geometry.Path.Contains(Pt(10, 5)))
	assert.False(t, s.Geometry.Path.Contains(Pt(19, 9)))
}

func TestRectNormalizesHandles(t *testing.T) {
	s := Rect(Pt(30, 40), Pt(10, 20))
	assert.Equal(t, KindStroke, s.Geometry.Kind)
	h := s.Handles
	assert.Equal(t, Pt(10, 20), h.Points[0])
	assert.Equal(t, Pt(20, 20), h.Points[1])
	assert.Equal(t, Pt(30, 20), h.Points[2])
	assert.Equal(t, Pt(30, 30), h.Points[3])
	assert.Equal(t, Pt(30, 40), h.Points[4])
	assert.Equal(t, Pt(20, 40), h.Points[5])
	assert.Equal(t, Pt(10, 40), h.Points[6])
	assert.Equal(t, Pt(10, 30), h.Points[7])
	assert.Equal(t, Pt(20, 30), h.Pivot)
	assert.True(t, s.Geometry.Path.Contains(Pt(15, 25)))
}

func TestDegenerateShapes(t *testing.T) {
	p := Pt(7, 7)
	for name, s := range map[string]Shape{
		"line":     Line(p, p),
		"arc":      Arc(p, p),
		"rect":     Rect(p, p),
		"mark":     Mark(p, p),
		"polyline": Polyline([]Point{p, p}),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, s.Geometry.Path)
			assert.False(t, math.IsNaN(s.Rotation))
			for _, c := range s.Geometry.Path {
				assert.False(t, math.IsNaN(c.Pt.X) || math.IsNaN(c.Pt.Y))
			}
		})
	}
}

func TestText(t *testing.T) {
	s := Text(Pt(100, 50), "hi", 40, 32)
	assert.Equal(t, KindText, s.Geometry.Kind)
	assert.Equal(t, "hi", s.Geometry.Text)
	assert.Equal(t, Pt(102, 66), s.Geometry.Anchor)
	b := s.Handles.Bounds()
	assert.Equal(t, Pt(100, 34), b.Min)
	assert.Equal(t, Pt(142, 66), b.Max)
	assert.Equal(t, b.Center(), s.Pivot())
}

func TestPolyline(t *testing.T) {
	s := Polyline([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)})
	require.Len(t, s.Geometry.Path, 3)
	assert.Equal(t, VerbMoveTo, s.Geometry.Path[0].Verb)
	assert.True(t, s.Handles.IsZero())
	assert.Empty(t, Polyline(nil).Geometry.Path)
}
