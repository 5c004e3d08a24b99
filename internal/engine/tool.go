package engine

import (
	"fmt"
	"strings"

	"SketchBoard/internal/state"
)

// Tool is the active drawing tool.
type Tool uint8

const (
	ToolLine Tool = iota
	ToolEraser
	ToolArc
	ToolRect
	ToolMark
	ToolText
	ToolSelect
)

var toolNames = [...]string{
	ToolLine:   "line",
	ToolEraser: "eraser",
	ToolArc:    "arc",
	ToolRect:   "rect",
	ToolMark:   "mark",
	ToolText:   "text",
	ToolSelect: "select",
}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", t)
}

// ParseTool maps a tool name to a Tool. "circle", "rectangle" and "arrow"
// are accepted as aliases.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "circle":
		return ToolArc, nil
	case "rectangle":
		return ToolRect, nil
	case "arrow":
		return ToolMark, nil
	}
	for i, n := range toolNames {
		if n == s {
			return Tool(i), nil
		}
	}
	return ToolLine, fmt.Errorf("unknown tool %q", s)
}

// Continuous tools paint each move straight onto the live surface.
func (t Tool) Continuous() bool {
	return t == ToolLine || t == ToolEraser
}

// Shape tools recompute the whole shape from the start point on every
// move, so the caller redraws the scene before each update.
func (t Tool) Shape() bool {
	switch t {
	case ToolArc, ToolRect, ToolMark, ToolText:
		return true
	}
	return false
}

// StyleSource supplies the ambient style for a tool. It is the global
// settings store seen from the engine.
type StyleSource interface {
	StyleFor(t Tool) state.Style
}

// StyleFunc adapts a function to StyleSource.
type StyleFunc func(Tool) state.Style

func (f StyleFunc) StyleFor(t Tool) state.Style { return f(t) }
