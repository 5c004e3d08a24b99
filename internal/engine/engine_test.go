package engine

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchBoard/internal/geom"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
)

var (
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func testStyles(t Tool) state.Style {
	st := state.Style{
		StrokeColor: black,
		FillColor:   black,
		LineWidth:   2,
		LineCap:     state.CapRound,
		Composite:   state.CompositeSourceOver,
		Font:        state.Font{Family: "go", Size: 32},
	}
	switch t {
	case ToolEraser:
		st.LineWidth = 20
		st.Composite = state.CompositeDestinationOut
	case ToolMark:
		st.FillColor = red
	}
	return st
}

func newEngine(t *testing.T) (*Engine, *render.Recorder) {
	t.Helper()
	r := render.NewRecorder()
	return New(r, StyleFunc(testStyles)), r
}

// draw runs a complete shape gesture the way a host does: redraw before
// every update.
func draw(e *Engine, tool Tool, from geom.Point, to ...geom.Point) *state.Annotation {
	e.Begin(tool, from)
	for _, p := range to {
		e.Redraw()
		e.Update(tool, p)
	}
	return e.Commit()
}

func TestFreehandPaintsIncrementallyAndCommitsPolyline(t *testing.T) {
	e, r := newEngine(t)
	e.Begin(ToolLine, geom.Pt(0, 0))
	e.Update(ToolLine, geom.Pt(1, 1))
	e.Update(ToolLine, geom.Pt(2, 1))
	e.Update(ToolLine, geom.Pt(3, 0))

	tool, ok := e.ActiveTool()
	require.True(t, ok)
	assert.Equal(t, ToolLine, tool)

	require.Len(t, r.Ops, 3)
	for _, op := range r.Ops {
		assert.Equal(t, render.OpStroke, op.Kind)
		assert.Len(t, op.Path, 2)
	}
	assert.Equal(t, geom.Pt(2, 1), r.Ops[2].Path[0].Pt)

	a := e.Commit()
	require.NotNil(t, a)
	assert.Len(t, a.Geometry.Path, 4)
	assert.False(t, a.Selectable())
	assert.False(t, e.InProgress())

	// Replay reconstructs the whole stroke, not only its last segment.
	r.Reset()
	e.Redraw()
	require.Len(t, r.Since(), 1)
	assert.Len(t, r.Since()[0].Path, 4)
}

func TestEraserUsesDestinationOut(t *testing.T) {
	e, r := newEngine(t)
	e.Begin(ToolEraser, geom.Pt(0, 0))
	e.Update(ToolEraser, geom.Pt(5, 5))
	require.Len(t, r.Ops, 1)
	assert.Equal(t, state.CompositeDestinationOut, r.Ops[0].Paint.Composite)
	assert.Equal(t, 20.0, r.Ops[0].Paint.LineWidth)

	a := e.Commit()
	require.NotNil(t, a)
	assert.Equal(t, state.CompositeDestinationOut, a.Style.Composite)
}

func TestPreconditionViolationsAreNoops(t *testing.T) {
	e, r := newEngine(t)

	e.Update(ToolRect, geom.Pt(5, 5))
	assert.Nil(t, e.Commit())
	e.UpdateText("ignored")
	assert.Empty(t, r.Ops)

	e.Begin(ToolRect, geom.Pt(0, 0))
	e.Update(ToolArc, geom.Pt(5, 5))
	assert.Empty(t, r.Ops, "update with another tool")
	assert.Nil(t, e.Commit(), "nothing was previewed")

	e.Begin(ToolLine, geom.Pt(0, 0))
	assert.Nil(t, e.Commit(), "a click without movement draws nothing")
	assert.Equal(t, 0, e.Store().Len())
}

func TestEmptyTextIsNotCommitted(t *testing.T) {
	e, _ := newEngine(t)
	e.Begin(ToolText, geom.Pt(10, 10))
	e.UpdateText("")
	assert.Nil(t, e.Commit())

	e.Begin(ToolText, geom.Pt(10, 10))
	e.UpdateText("draft")
	e.UpdateText("")
	assert.Nil(t, e.Commit())
	assert.Equal(t, 0, e.Store().Len())
}

func TestTextCommit(t *testing.T) {
	e, r := newEngine(t)
	e.Begin(ToolText, geom.Pt(100, 100))
	e.Redraw()
	e.UpdateText("hello")
	a := e.Commit()
	require.NotNil(t, a)
	assert.Equal(t, geom.KindText, a.Geometry.Kind)
	assert.Equal(t, "hello", a.Geometry.Text)

	// Recorder measures 16px per rune at 32px.
	b := a.Handles.Bounds()
	assert.Equal(t, geom.Pt(100, 84), b.Min)
	assert.Equal(t, geom.Pt(182, 116), b.Max)
	assert.Same(t, a, e.HitTest(geom.Pt(150, 100)))
	assert.Nil(t, e.HitTest(geom.Pt(190, 100)))

	ops := r.Since()
	require.NotEmpty(t, ops)
	assert.Equal(t, render.OpText, ops[len(ops)-1].Kind)
}

func TestCancelLeavesStoreUntouched(t *testing.T) {
	e, _ := newEngine(t)
	draw(e, ToolRect, geom.Pt(0, 0), geom.Pt(10, 10))
	e.Begin(ToolArc, geom.Pt(0, 0))
	e.Update(ToolArc, geom.Pt(10, 10))
	e.Cancel()
	assert.False(t, e.InProgress())
	assert.Nil(t, e.Commit())
	assert.Equal(t, 1, e.Store().Len())
}

func TestShapeUpdateRecomputesFromStart(t *testing.T) {
	e, r := newEngine(t)
	a := draw(e, ToolRect, geom.Pt(0, 0), geom.Pt(10, 10))
	require.NotNil(t, a)

	e.Begin(ToolArc, geom.Pt(50, 50))
	e.Redraw()
	e.Update(ToolArc, geom.Pt(60, 50))
	e.Redraw()
	e.Update(ToolArc, geom.Pt(70, 50))

	ops := r.Since()
	require.Len(t, ops, 2, "committed rect plus one preview")
	assert.Equal(t, a.Geometry.Path, ops[0].Path)
	assert.Equal(t, geom.Pt(60, 50), ops[1].Path[0].Pt)
	assert.Equal(t, 10.0, ops[1].Path[0].Radius)
}

func TestReplayMatchesIncrementalCommits(t *testing.T) {
	e, r := newEngine(t)
	var previews []render.Op
	gesture := func(tool Tool, from, to geom.Point) {
		e.Begin(tool, from)
		e.Update(tool, to)
		ops := r.Ops
		previews = append(previews, ops[len(ops)-1])
		e.Commit()
	}
	gesture(ToolRect, geom.Pt(0, 0), geom.Pt(30, 20))
	gesture(ToolArc, geom.Pt(10, 10), geom.Pt(40, 40))
	gesture(ToolMark, geom.Pt(100, 100), geom.Pt(20, 60))

	e.Redraw()
	assert.Equal(t, previews, r.Since())
}

func TestMarkCommitKeepsTransform(t *testing.T) {
	e, _ := newEngine(t)
	a := draw(e, ToolMark, geom.Pt(10, 10), geom.Pt(60, 10))
	require.NotNil(t, a)
	assert.Equal(t, geom.Pt(10, 10), a.Style.Translate)
	assert.Equal(t, 0.0, a.Style.Rotation)
	assert.Equal(t, red, a.Style.FillColor)
	assert.Equal(t, geom.KindFill, a.Geometry.Kind)
}

func TestUndoRedoThroughEngine(t *testing.T) {
	e, r := newEngine(t)
	for i := 0; i < 3; i++ {
		draw(e, ToolRect, geom.Pt(0, 0), geom.Pt(float64(10+i), 10))
	}
	for i := 0; i < 3; i++ {
		_, ok := e.Undo()
		require.True(t, ok)
	}
	_, ok := e.Undo()
	assert.False(t, ok)

	r.Reset()
	e.Redraw()
	assert.Empty(t, r.Since())

	a, ok := e.Redo()
	require.True(t, ok)
	assert.Equal(t, 10.0, a.Geometry.Path[0].W, "the first undone comes back last")
}

func TestRedoClearedByCommit(t *testing.T) {
	e, _ := newEngine(t)
	draw(e, ToolRect, geom.Pt(0, 0), geom.Pt(1, 1))
	draw(e, ToolRect, geom.Pt(0, 0), geom.Pt(2, 2))
	e.Undo()
	c := draw(e, ToolRect, geom.Pt(0, 0), geom.Pt(3, 3))
	_, ok := e.Redo()
	assert.False(t, ok)
	all := e.Store().All()
	require.Len(t, all, 2)
	assert.Same(t, c, all[1])
}
