// Package settings is the global style store: the defaults read from the
// config file plus the active color, line width and tool the toolbar
// changes at runtime.
package settings

import (
	"image/color"

	"SketchBoard/internal/engine"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
)

// Settings holds the complete configuration.
type Settings struct {
	// Canvas is the drawing surface.
	Canvas CanvasConfig `toml:"canvas"`

	// Style is the ambient paint for new annotations.
	Style StyleConfig `toml:"style"`

	// Eraser configures the eraser stroke.
	Eraser EraserConfig `toml:"eraser"`

	// Handles configures the selection outline.
	Handles HandlesConfig `toml:"handles"`

	// Tool is the tool active at startup.
	Tool ToolConfig `toml:"tool"`

	// Logging configures log output.
	Logging LoggingConfig `toml:"logging"`

	active active
}

type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type StyleConfig struct {
	// StrokeColor is the initial active color, "#rrggbb" or a CSS name.
	StrokeColor string  `toml:"stroke_color"`
	MarkColor   string  `toml:"mark_color"`
	LineWidth   float64 `toml:"line_width"`
	LineCap     string  `toml:"line_cap"`
	FontFamily  string  `toml:"font_family"`
	FontSize    float64 `toml:"font_size"`
}

type EraserConfig struct {
	Width float64 `toml:"width"`
}

type HandlesConfig struct {
	Radius      float64 `toml:"radius"`
	StrokeColor string  `toml:"stroke_color"`
	FillColor   string  `toml:"fill_color"`
}

type ToolConfig struct {
	Default string `toml:"default"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Format is text or json.
	Format string `toml:"format"`
}

// active is the runtime state derived from the config and changed by the
// host UI.
type active struct {
	color      color.Color
	markColor  color.Color
	background color.Color
	width      float64
	cap        state.LineCap
	tool       engine.Tool
	handles    render.HandleStyle
}

// Default returns the built-in settings.
func Default() *Settings {
	s := &Settings{
		Canvas: CanvasConfig{Width: 1024, Height: 768, Background: "white"},
		Style: StyleConfig{
			StrokeColor: "black",
			MarkColor:   "red",
			LineWidth:   2,
			LineCap:     "round",
			FontFamily:  "go",
			FontSize:    32,
		},
		Eraser:  EraserConfig{Width: 20},
		Handles: HandlesConfig{Radius: 4, StrokeColor: "#1e90ff", FillColor: "white"},
		Tool:    ToolConfig{Default: "line"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
	// The defaults always validate.
	_ = s.activate()
	return s
}

// activate resolves the config strings into the active state.
func (s *Settings) activate() error {
	if err := s.Validate(); err != nil {
		return err
	}
	a := &s.active
	a.color, _ = ParseColor(s.Style.StrokeColor)
	a.markColor, _ = ParseColor(s.Style.MarkColor)
	a.background, _ = ParseColor(s.Canvas.Background)
	a.width = s.Style.LineWidth
	a.cap, _ = state.ParseLineCap(s.Style.LineCap)
	a.tool, _ = engine.ParseTool(s.Tool.Default)
	hs := render.HandleStyle{Radius: s.Handles.Radius}
	hs.Stroke, _ = ParseColor(s.Handles.StrokeColor)
	hs.Fill, _ = ParseColor(s.Handles.FillColor)
	a.handles = hs
	return nil
}

// StyleFor returns the ambient style for tool. Every paint field is set.
func (s *Settings) StyleFor(tool engine.Tool) state.Style {
	a := s.active
	st := state.Style{
		StrokeColor: a.color,
		FillColor:   a.color,
		LineWidth:   a.width,
		LineCap:     a.cap,
		Composite:   state.CompositeSourceOver,
		Font:        state.Font{Family: s.Style.FontFamily, Size: s.Style.FontSize},
	}
	switch tool {
	case engine.ToolEraser:
		st.LineWidth = s.Eraser.Width
		st.LineCap = state.CapRound
		st.Composite = state.CompositeDestinationOut
	case engine.ToolMark:
		st.FillColor = a.markColor
	}
	return st
}

var _ engine.StyleSource = (*Settings)(nil)

func (s *Settings) Color() color.Color { return s.active.color }

// SetColor changes the active color. A nil color is ignored.
func (s *Settings) SetColor(c color.Color) {
	if c != nil {
		s.active.color = c
	}
}

func (s *Settings) LineWidth() float64 { return s.active.width }

// SetLineWidth changes the active line width. Non-positive widths are
// ignored.
func (s *Settings) SetLineWidth(w float64) {
	if w > 0 {
		s.active.width = w
	}
}

func (s *Settings) ActiveTool() engine.Tool { return s.active.tool }
func (s *Settings) SetTool(t engine.Tool) { s.active.tool = t }

// Background is the color hosts paint behind the transparent surface.
func (s *Settings) Background() color.Color { return s.active.background }

// HandleStyle is how selection handles are drawn.
func (s *Settings) HandleStyle() render.HandleStyle { return s.active.handles }
