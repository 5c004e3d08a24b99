package render

import (
	"image/color"
	"slices"
	"unicode/utf8"

	"SketchBoard/internal/geom"
	"SketchBoard/internal/state"
)

// OpKind names a recorded paint operation.
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpStroke OpKind = "stroke"
	OpFill   OpKind = "fill"
	OpText   OpKind = "text"
)

// PaintState is the effective surface state at the time of an operation.
type PaintState struct {
	StrokeColor color.Color
	FillColor   color.Color
	LineWidth   float64
	LineCap     state.LineCap
	Composite   state.CompositeOp
	Font        state.Font
	Transform   geom.Matrix
}

// Op is one recorded paint operation.
type Op struct {
	Kind  OpKind
	Path  geom.Path
	Text  string
	At    geom.Point
	Paint PaintState
}

// Recorder is a Surface that records paint operations instead of
// rasterising them. Two scenes are equivalent when their recorded op
// lists are equal.
type Recorder struct {
	Ops []Op

	cur   PaintState
	stack []PaintState
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{cur: PaintState{
		StrokeColor: color.Black,
		FillColor:   color.Black,
		LineWidth:   1,
		LineCap:     state.CapButt,
		Composite:   state.CompositeSourceOver,
		Transform:   geom.Identity,
	}}
}

// Reset drops the recorded ops, keeping the current state.
func (r *Recorder) Reset() { r.Ops = nil }

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// Since returns the ops recorded after the last clear.
func (r *Recorder) Since() []Op {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Kind == OpClear {
			return r.Ops[i+1:]
		}
	}
	return r.Ops
}

func (r *Recorder) Save() { r.stack = append(r.stack, r.cur) }

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.cur = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) SetStrokeColor(c color.Color) { r.cur.StrokeColor = c }
func (r *Recorder) SetFillColor(c color.Color) { r.cur.FillColor = c }
func (r *Recorder) SetLineWidth(w float64) { r.cur.LineWidth = w }
func (r *Recorder) SetLineCap(c state.LineCap) { r.cur.LineCap = c }
func (r *Recorder) SetComposite(op state.CompositeOp) { r.cur.Composite = op }
func (r *Recorder) SetFont(f state.Font) { r.cur.Font = f }

func (r *Recorder) Translate(x, y float64) {
	r.cur.Transform = r.cur.Transform.Mul(geom.Translate(x, y))
}

func (r *Recorder) Rotate(angle float64) {
	r.cur.Transform = r.cur.Transform.Mul(geom.Rotate(angle))
}

func (r *Recorder) StrokePath(p geom.Path) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Path: slices.Clone(p), Paint: r.cur})
}

func (r *Recorder) FillPath(p geom.Path) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Path: slices.Clone(p), Paint: r.cur})
}

func (r *Recorder) FillText(s string, at geom.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, At: at, Paint: r.cur})
}

// MeasureText approximates a monospace face: each rune is half the font
// size wide.
func (r *Recorder) MeasureText(s string, f state.Font) (w, h float64) {
	size := f.Size
	if size == 0 {
		size = r.cur.Font.Size
	}
	return float64(utf8.RuneCountInString(s)) * size / 2, size
}
