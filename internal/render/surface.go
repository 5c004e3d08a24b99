// Package render paints annotations onto a drawing surface. It owns the
// order in which style snapshots are applied and keeps every application
// scoped so paint and transform state never leak between shapes.
package render

import (
	"image/color"

	"SketchBoard/internal/geom"
	"SketchBoard/internal/state"
)

// Surface is a canvas with a save/restore state stack. Paths are given in
// the current local space; the surface applies its transform.
type Surface interface {
	Save()
	Restore()
	// Clear erases every pixel. It does not touch the state stack.
	Clear()

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c state.LineCap)
	SetComposite(op state.CompositeOp)
	SetFont(f state.Font)

	Translate(x, y float64)
	Rotate(angle float64)

	StrokePath(p geom.Path)
	FillPath(p geom.Path)
	// FillText draws s with its baseline starting at at.
	FillText(s string, at geom.Point)
	MeasureText(s string, f state.Font) (w, h float64)
}
