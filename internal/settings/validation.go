package settings

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"SketchBoard/internal/engine"
	"SketchBoard/internal/state"
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// ValidationError is one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("settings: %s: %s", e.Field, e.Message)
}

// Validate checks every field and reports all problems at once.
func (s *Settings) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	checkColor := func(field, v string) {
		if _, err := ParseColor(v); err != nil {
			add(field, "%v", err)
		}
	}

	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		add("canvas", "size must be positive, got %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	checkColor("canvas.background", s.Canvas.Background)
	checkColor("style.stroke_color", s.Style.StrokeColor)
	checkColor("style.mark_color", s.Style.MarkColor)
	if s.Style.LineWidth <= 0 {
		add("style.line_width", "must be positive")
	}
	if _, err := state.ParseLineCap(s.Style.LineCap); err != nil {
		add("style.line_cap", "%v", err)
	}
	if s.Style.FontSize <= 0 {
		add("style.font_size", "must be positive")
	}
	if s.Eraser.Width <= 0 {
		add("eraser.width", "must be positive")
	}
	if s.Handles.Radius <= 0 {
		add("handles.radius", "must be positive")
	}
	checkColor("handles.stroke_color", s.Handles.StrokeColor)
	checkColor("handles.fill_color", s.Handles.FillColor)
	if _, err := engine.ParseTool(s.Tool.Default); err != nil {
		add("tool.default", "%v", err)
	}
	if _, err := parseLevel(s.Logging.Level); err != nil {
		add("logging.level", "%v", err)
	}
	switch strings.ToLower(s.Logging.Format) {
	case "", "text", "json":
	default:
		add("logging.format", "unknown format %q", s.Logging.Format)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}

// ParseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or a CSS
// color name.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		c, err := gg.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		return c.Color(), nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
