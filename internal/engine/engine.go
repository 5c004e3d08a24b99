// Package engine drives an annotation session: it turns tool gestures into
// shapes, commits them to the store, replays the scene and moves
// annotations picked by hit-testing.
//
// The engine runs on the host's event loop and is not safe for concurrent
// use. Every operation is total: calls out of order are no-ops.
package engine

import (
	"SketchBoard/internal/geom"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
)

// Option configures an Engine.
type Option func(*Engine)

// WithStore makes the engine work on an existing store.
func WithStore(s *state.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithHandleStyle sets how selection handles are drawn.
func WithHandleStyle(hs render.HandleStyle) Option {
	return func(e *Engine) { e.handles = hs }
}

// session is the state of one gesture between Begin and Commit.
type session struct {
	tool   Tool
	start  geom.Point
	last   geom.Point
	points []geom.Point
	style  state.Style
	shape  *geom.Shape
}

type drag struct {
	target *state.Annotation
	last   geom.Point
}

// Engine is the annotation engine bound to one drawing surface.
type Engine struct {
	surface render.Surface
	styles  StyleSource
	store   *state.Store
	handles render.HandleStyle

	session *session
	drag    *drag
}

// New returns an engine painting on surface with ambient styles from
// styles.
func New(surface render.Surface, styles StyleSource, opts ...Option) *Engine {
	e := &Engine{
		surface: surface,
		styles:  styles,
		handles: render.DefaultHandleStyle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = state.NewStore()
	}
	return e
}

func (e *Engine) Store() *state.Store { return e.store }

// InProgress reports whether a gesture is active.
func (e *Engine) InProgress() bool { return e.session != nil }

// ActiveTool returns the tool of the active gesture.
func (e *Engine) ActiveTool() (Tool, bool) {
	if e.session == nil {
		return 0, false
	}
	return e.session.tool, true
}

// Begin starts a gesture at p. A gesture already in progress is
// discarded. The select tool has no gesture; use Select and the drag
// methods instead.
func (e *Engine) Begin(tool Tool, p geom.Point) {
	if e.session != nil {
		Logger().Debug("gesture replaced", "tool", e.session.tool)
		e.session = nil
	}
	if tool == ToolSelect {
		return
	}
	e.session = &session{
		tool:   tool,
		start:  p,
		last:   p,
		points: []geom.Point{p},
		style:  e.styles.StyleFor(tool),
	}
}

// Update moves the gesture to p. Continuous tools paint the newest
// segment onto the live surface. Shape tools paint a fresh preview of the
// whole shape; the caller must clear and replay the scene first (Redraw).
func (e *Engine) Update(tool Tool, p geom.Point) {
	s := e.session
	if s == nil || s.tool != tool {
		return
	}
	if tool.Continuous() {
		seg := geom.Line(s.last, p)
		render.RenderPreview(e.surface, seg.Geometry, s.style)
		s.last = p
		s.points = append(s.points, p)
		return
	}
	var sh geom.Shape
	switch tool {
	case ToolArc:
		sh = geom.Arc(s.start, p)
	case ToolRect:
		sh = geom.Rect(s.start, p)
	case ToolMark:
		sh = geom.Mark(s.start, p)
	default:
		return
	}
	s.last = p
	s.shape = &sh
	e.preview()
}

// UpdateText sets the live string of a text gesture and paints it. Like
// shape tools, the caller redraws the scene first.
func (e *Engine) UpdateText(text string) {
	s := e.session
	if s == nil || s.tool != ToolText {
		return
	}
	w, _ := e.surface.MeasureText(text, s.style.Font)
	sh := geom.Text(s.start, text, w, s.style.Font.Size)
	s.shape = &sh
	e.preview()
}

func (e *Engine) preview() {
	s := e.session
	render.RenderPreview(e.surface, s.shape.Geometry, shapeStyle(s.style, *s.shape))
}

func shapeStyle(st state.Style, sh geom.Shape) state.Style {
	st.Translate = sh.Translate
	st.Rotation = sh.Rotation
	return st
}

// Commit stores the in-progress shape and ends the gesture. A freehand
// gesture is stored as one polyline through all of its points. Commit
// returns nil when nothing was drawn, including empty text.
func (e *Engine) Commit() *state.Annotation {
	s := e.session
	e.session = nil
	if s == nil {
		return nil
	}
	if s.tool.Continuous() && len(s.points) > 1 {
		stroke := geom.Polyline(s.points)
		s.shape = &stroke
	}
	if s.shape == nil {
		return nil
	}
	sh := *s.shape
	if sh.Geometry.Kind == geom.KindText && sh.Geometry.Text == "" {
		return nil
	}
	a := e.store.Commit(sh.Geometry, shapeStyle(s.style, sh), sh.Handles, sh.Pivot())
	Logger().Debug("annotation committed",
		"id", a.ID, "seq", a.Seq, "tool", s.tool, "kind", a.Geometry.Kind)
	return a
}

// Cancel discards the gesture without touching the store.
func (e *Engine) Cancel() {
	if e.session != nil {
		Logger().Debug("gesture cancelled", "tool", e.session.tool)
	}
	e.session = nil
}

// Undo removes the topmost annotation. The caller redraws afterwards.
func (e *Engine) Undo() (*state.Annotation, bool) {
	a, ok := e.store.Undo()
	if ok {
		Logger().Debug("undo", "id", a.ID, "seq", a.Seq)
	}
	return a, ok
}

// Redo restores the most recently undone annotation on top. The caller
// redraws afterwards.
func (e *Engine) Redo() (*state.Annotation, bool) {
	a, ok := e.store.Redo()
	if ok {
		Logger().Debug("redo", "id", a.ID, "seq", a.Seq)
	}
	return a, ok
}

// Redraw clears the surface, replays the store and outlines the selected
// annotation.
func (e *Engine) Redraw() {
	e.surface.Clear()
	render.Replay(e.surface, e.store.All())
	if sel := e.store.Selected(); sel != nil {
		render.RenderHandles(e.surface, sel.Handles, sel.Style, e.handles)
	}
}
