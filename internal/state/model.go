package state

import (
	"fmt"
	"image/color"
	"strings"

	"SketchBoard/internal/geom"
)

// LineCap is the end cap of stroked paths. CapDefault means unset.
type LineCap uint8

const (
	CapDefault LineCap = iota
	CapButt
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	}
	return "default"
}

// ParseLineCap maps a cap name to a LineCap.
func ParseLineCap(s string) (LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return CapDefault, nil
	case "butt":
		return CapButt, nil
	case "round":
		return CapRound, nil
	case "square":
		return CapSquare, nil
	}
	return CapDefault, fmt.Errorf("unknown line cap %q", s)
}

// CompositeOp is how painted pixels combine with the surface.
// CompositeDefault means unset.
type CompositeOp uint8

const (
	CompositeDefault CompositeOp = iota
	CompositeSourceOver
	CompositeDestinationOut
)

func (c CompositeOp) String() string {
	switch c {
	case CompositeSourceOver:
		return "source-over"
	case CompositeDestinationOut:
		return "destination-out"
	}
	return "default"
}

// Font describes the label font. The zero Font is unset.
type Font struct {
	Family string
	Size   float64
}

func (f Font) IsZero() bool { return f == Font{} }

// Style is the paint and transform snapshot a shape is drawn with.
// Zero-valued paint fields are unset and fall back to the ambient
// defaults; Translate and Rotation always apply.
type Style struct {
	StrokeColor color.Color
	FillColor   color.Color
	LineWidth   float64
	LineCap     LineCap
	Composite   CompositeOp
	Font        Font

	Translate geom.Point
	Rotation  float64
}

// Resolve fills every unset paint field of s from def. The transform of
// s is kept as is.
func (s Style) Resolve(def Style) Style {
	if s.StrokeColor == nil {
		s.StrokeColor = def.StrokeColor
	}
	if s.FillColor == nil {
		s.FillColor = def.FillColor
	}
	if s.LineWidth == 0 {
		s.LineWidth = def.LineWidth
	}
	if s.LineCap == CapDefault {
		s.LineCap = def.LineCap
	}
	if s.Composite == CompositeDefault {
		s.Composite = def.Composite
	}
	if s.Font.Family == "" {
		s.Font.Family = def.Font.Family
	}
	if s.Font.Size == 0 {
		s.Font.Size = def.Font.Size
	}
	return s
}

// Annotation is one committed shape or text label. Geometry and Handles
// never change after commit; dragging only moves Style.Translate.
type Annotation struct {
	ID       string
	Seq      uint64
	Geometry geom.Geometry
	Style    Style
	Handles  geom.HandleSet
	Pivot    geom.Point
	Selected bool
}

// Selectable reports whether the annotation has handles to grab.
// Freehand ink and eraser strokes have none.
func (a *Annotation) Selectable() bool {
	return !a.Handles.IsZero()
}

type OpType string

const (
	OpCommit OpType = "commit"
	OpUndo   OpType = "undo"
	OpRedo   OpType = "redo"
	OpMove   OpType = "move"
	OpSelect OpType = "select"
)

// Op describes one store mutation. ID is empty when a selection is cleared.
type Op struct {
	Type OpType
	ID   string
	Seq  uint64
	Site string
}
