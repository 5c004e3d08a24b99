package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/engine"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var toolIcons = []struct {
	tool engine.Tool
	icon fyne.Resource
}{
	{engine.ToolLine, theme.DocumentCreateIcon()},
	{engine.ToolEraser, theme.DeleteIcon()},
	{engine.ToolArc, theme.RadioButtonIcon()},
	{engine.ToolRect, theme.CheckButtonIcon()},
	{engine.ToolMark, theme.NavigateNextIcon()},
	{engine.ToolText, theme.FileTextIcon()},
	{engine.ToolSelect, theme.ViewFullScreenIcon()},
}

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	tb := widget.NewToolbar()
	for _, ti := range toolIcons {
		t := ti.tool
		tb.Append(widget.NewToolbarAction(ti.icon, func() { board.SetTool(t) }))
	}
	tb.Append(widget.NewToolbarSeparator())
	tb.Append(widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo))
	tb.Append(widget.NewToolbarAction(theme.ContentRedoIcon(), board.Redo))

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		board.settings.SetColor(c)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(board.settings.LineWidth())
	strokeSlider.OnChanged = func(val float64) {
		board.settings.SetLineWidth(val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
