// Package raster implements the drawing surface on a gg software canvas.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"SketchBoard/internal/engine"
	"SketchBoard/internal/geom"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
)

// paint mirrors the canvas paint attributes. gg only stacks the transform
// and shares one brush between fill and stroke, so the surface keeps its
// own copy and sets the brush right before painting.
type paint struct {
	stroke    color.Color
	fill      color.Color
	width     float64
	cap       state.LineCap
	composite state.CompositeOp
	font      state.Font
}

// Surface is a render.Surface backed by a gg.Context. The canvas starts
// transparent; hosts composite it over their own background.
type Surface struct {
	dc      *gg.Context
	pm      *gg.Pixmap
	scratch *gg.Context
	mask    *gg.Pixmap

	cur   paint
	stack []paint

	sources map[string]*text.FontSource
	faces   map[state.Font]text.Face
}

var _ render.Surface = (*Surface)(nil)

var fontData = map[string][]byte{
	"go":      goregular.TTF,
	"go-mono": gomono.TTF,
	"go-bold": gobold.TTF,
}

// New returns a transparent surface of the given pixel size.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid surface size %dx%d", width, height)
	}
	pm, mask := gg.NewPixmap(width, height), gg.NewPixmap(width, height)
	s := &Surface{
		dc:      gg.NewContext(width, height, gg.WithPixmap(pm)),
		pm:      pm,
		scratch: gg.NewContext(width, height, gg.WithPixmap(mask)),
		mask:    mask,
		sources: make(map[string]*text.FontSource),
		faces:   make(map[state.Font]text.Face),
		cur: paint{
			stroke:    color.Black,
			fill:      color.Black,
			width:     1,
			cap:       state.CapButt,
			composite: state.CompositeSourceOver,
			font:      state.Font{Family: "go", Size: 16},
		},
	}
	if _, err := s.source("go"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Surface) Width() int { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

// Image returns a snapshot of the canvas.
func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) Save() {
	s.dc.Push()
	s.stack = append(s.stack, s.cur)
}

func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.dc.Pop()
	s.cur = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

func (s *Surface) Clear() { s.dc.Clear() }

func (s *Surface) SetStrokeColor(c color.Color) { s.cur.stroke = c }
func (s *Surface) SetFillColor(c color.Color) { s.cur.fill = c }
func (s *Surface) SetLineWidth(w float64) { s.cur.width = w }
func (s *Surface) SetLineCap(c state.LineCap) { s.cur.cap = c }
func (s *Surface) SetComposite(op state.CompositeOp) { s.cur.composite = op }
func (s *Surface) SetFont(f state.Font) { s.cur.font = f }

func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Rotate(angle float64) { s.dc.Rotate(angle) }

func (s *Surface) StrokePath(p geom.Path) {
	s.paintPath(p, true)
}

func (s *Surface) FillPath(p geom.Path) {
	s.paintPath(p, false)
}

func (s *Surface) paintPath(p geom.Path, stroke bool) {
	dc := s.dc
	if s.cur.composite == state.CompositeDestinationOut {
		dc = s.scratch
		dc.Clear()
		dc.SetTransform(s.dc.GetTransform())
	}
	c := s.cur.fill
	if stroke {
		c = s.cur.stroke
		dc.SetLineWidth(s.cur.width)
		dc.SetLineCap(ggCap(s.cur.cap))
	}
	if s.cur.composite == state.CompositeDestinationOut {
		c = color.Black
	}
	dc.SetColor(c)
	trace(dc, p)

	var err error
	if stroke {
		err = dc.Stroke()
	} else {
		err = dc.Fill()
	}
	if err != nil {
		engine.Logger().Warn("raster: paint failed", "stroke", stroke, "err", err)
		return
	}
	if dc == s.scratch {
		s.erase()
	}
}

// erase removes the scratch coverage from the canvas (destination-out).
// gg pixels are premultiplied, so every channel scales with the alpha.
func (s *Surface) erase() {
	m, data := s.mask.Data(), s.pm.Data()
	for i := 3; i < len(m) && i < len(data); i += 4 {
		a := m[i]
		if a == 0 {
			continue
		}
		keep := 255 - uint32(a)
		for j := i - 3; j <= i; j++ {
			data[j] = uint8(uint32(data[j]) * keep / 255)
		}
	}
}

// trace replays p as gg path commands.
func trace(dc *gg.Context, p geom.Path) {
	dc.ClearPath()
	open := false
	for _, c := range p {
		switch c.Verb {
		case geom.VerbMoveTo:
			dc.MoveTo(c.Pt.X, c.Pt.Y)
			open = true
		case geom.VerbLineTo:
			if !open {
				dc.MoveTo(c.Pt.X, c.Pt.Y)
				open = true
				continue
			}
			dc.LineTo(c.Pt.X, c.Pt.Y)
		case geom.VerbArc:
			pts := c.ArcPoints()
			for i, q := range pts {
				if i == 0 && !open {
					dc.MoveTo(q.X, q.Y)
					open = true
					continue
				}
				dc.LineTo(q.X, q.Y)
			}
			if math.Abs(c.End-c.Start) >= 2*math.Pi {
				dc.ClosePath()
			}
		case geom.VerbRect:
			o := c.Pt
			dc.MoveTo(o.X, o.Y)
			dc.LineTo(o.X+c.W, o.Y)
			dc.LineTo(o.X+c.W, o.Y+c.H)
			dc.LineTo(o.X, o.Y+c.H)
			dc.ClosePath()
			dc.MoveTo(o.X, o.Y)
			open = true
		case geom.VerbClose:
			dc.ClosePath()
		}
	}
}

func ggCap(c state.LineCap) gg.LineCap {
	switch c {
	case state.CapRound:
		return gg.LineCapRound
	case state.CapSquare:
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}

// FillText draws s with its baseline starting at at, in the current
// transform.
func (s *Surface) FillText(str string, at geom.Point) {
	face, err := s.face(s.cur.font)
	if err != nil {
		engine.Logger().Warn("raster: no face for label", "font", s.cur.font.Family, "err", err)
		return
	}
	s.dc.SetFont(face)
	s.dc.SetColor(s.cur.fill)
	s.dc.DrawString(str, at.X, at.Y)
}

func (s *Surface) MeasureText(str string, f state.Font) (w, h float64) {
	if f.IsZero() {
		f = s.cur.font
	}
	face, err := s.face(f)
	if err != nil {
		return 0, f.Size
	}
	return text.Measure(str, face)
}

func (s *Surface) face(f state.Font) (text.Face, error) {
	if f.Family == "" {
		f.Family = "go"
	}
	if f.Size <= 0 {
		f.Size = s.cur.font.Size
	}
	f.Family = strings.ToLower(f.Family)
	if face, ok := s.faces[f]; ok {
		return face, nil
	}
	src, err := s.source(f.Family)
	if err != nil {
		return nil, err
	}
	face := src.Face(f.Size)
	s.faces[f] = face
	return face, nil
}

func (s *Surface) source(family string) (*text.FontSource, error) {
	if src, ok := s.sources[family]; ok {
		return src, nil
	}
	data, ok := fontData[family]
	if !ok {
		return nil, fmt.Errorf("raster: unknown font family %q", family)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("raster: load font %q: %w", family, err)
	}
	s.sources[family] = src
	return src, nil
}
