package engine

import (
	"SketchBoard/internal/geom"
	"SketchBoard/internal/state"
)

// ToLocal maps a surface point into a's local space: the translate is
// removed first, then the rotation is undone about the pivot.
func ToLocal(a *state.Annotation, p geom.Point) geom.Point {
	local := p.Sub(a.Style.Translate)
	if a.Style.Rotation != 0 {
		local = local.RotateAbout(a.Pivot, -a.Style.Rotation)
	}
	return local
}

// Hit reports whether p falls on a. Text is tested against its handle
// rectangle, everything else against the fill region of its path.
// Annotations without handles are never hit.
func Hit(a *state.Annotation, p geom.Point) bool {
	if !a.Selectable() {
		return false
	}
	local := ToLocal(a, p)
	if a.Geometry.Kind == geom.KindText {
		return a.Handles.Bounds().Contains(local)
	}
	return a.Geometry.Path.Contains(local)
}

// HitTest returns the topmost annotation under p, or nil.
func (e *Engine) HitTest(p geom.Point) *state.Annotation {
	return e.store.TopmostHitAt(p, Hit)
}

// Select selects the topmost annotation under p. Clicking empty space
// clears the selection. It returns the selected annotation, if any.
func (e *Engine) Select(p geom.Point) *state.Annotation {
	hit := e.HitTest(p)
	e.store.Select(hit)
	if hit != nil {
		Logger().Debug("annotation selected", "id", hit.ID, "seq", hit.Seq)
	}
	return hit
}

// BeginDrag selects a and starts moving it from p.
func (e *Engine) BeginDrag(a *state.Annotation, p geom.Point) {
	if a == nil {
		return
	}
	e.store.Select(a)
	e.drag = &drag{target: a, last: p}
}

// ContinueDrag moves a by the distance from the previous drag point to p
// and redraws the scene with a's handles.
func (e *Engine) ContinueDrag(a *state.Annotation, p geom.Point) {
	d := e.drag
	if d == nil || d.target != a {
		return
	}
	delta := p.Sub(d.last)
	d.last = p
	e.store.Move(a, delta)
	e.Redraw()
}

// EndDrag finishes a move. The annotation stays selected.
func (e *Engine) EndDrag() {
	if e.drag != nil {
		Logger().Debug("drag finished", "id", e.drag.target.ID,
			"translate", e.drag.target.Style.Translate)
	}
	e.drag = nil
}

// Dragging reports whether a move is in progress.
func (e *Engine) Dragging() bool { return e.drag != nil }
