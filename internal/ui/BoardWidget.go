package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/engine"
	"SketchBoard/internal/geom"
	"SketchBoard/internal/raster"
	"SketchBoard/internal/settings"
	"SketchBoard/internal/state"
)

// BoardWidget hosts the annotation engine: it feeds pointer events to it
// and shows the raster surface it paints on.
type BoardWidget struct {
	widget.BaseWidget

	engine   *engine.Engine
	surface  *raster.Surface
	settings *settings.Settings

	image     *canvas.Image
	statusBar *widget.Label
	text      *textEntry

	pressed bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *settings.Settings) (*BoardWidget, error) {
	surface, err := raster.New(s.Canvas.Width, s.Canvas.Height)
	if err != nil {
		return nil, err
	}
	b := &BoardWidget{
		surface:   surface,
		settings:  s,
		statusBar: widget.NewLabel("Ready"),
	}
	store := state.NewStore()
	store.OnChange = b.storeChanged
	b.engine = engine.New(surface, s,
		engine.WithStore(store),
		engine.WithHandleStyle(s.HandleStyle()))
	b.image = canvas.NewImageFromImage(surface.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScaleFastest
	b.ExtendBaseWidget(b)
	return b, nil
}

func (b *BoardWidget) Engine() *engine.Engine { return b.engine }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) storeChanged(op state.Op) {
	engine.Logger().Debug("store changed", "op", op.Type, "id", op.ID, "seq", op.Seq, "site", op.Site)
	b.SetStatus(statusText(op, b.engine.Store().Len()))
}

func statusText(op state.Op, n int) string {
	switch op.Type {
	case state.OpSelect:
		if op.ID == "" {
			return fmt.Sprintf("Selection cleared, %d annotations", n)
		}
		return fmt.Sprintf("Selected #%d", op.Seq)
	case state.OpMove:
		return fmt.Sprintf("Moved #%d", op.Seq)
	}
	return fmt.Sprintf("%s #%d, %d annotations", op.Type, op.Seq, n)
}

// toSurface maps a widget position to surface pixels. The image is
// stretched over the whole widget.
func (b *BoardWidget) toSurface(pos fyne.Position) geom.Point {
	size := b.Size()
	x, y := float64(pos.X), float64(pos.Y)
	if size.Width > 0 && size.Height > 0 {
		x *= float64(b.surface.Width()) / float64(size.Width)
		y *= float64(b.surface.Height()) / float64(size.Height)
	}
	return geom.Pt(x, y)
}

// show pushes the current surface pixels to the screen.
func (b *BoardWidget) show() {
	b.image.Image = b.surface.Image()
	b.image.Refresh()
}

// SetTool finishes any pending text and switches the active tool.
func (b *BoardWidget) SetTool(t engine.Tool) {
	b.commitText()
	if t != engine.ToolSelect && b.engine.Store().Selected() != nil {
		b.engine.Store().ClearSelection()
		b.engine.Redraw()
		b.show()
	}
	b.settings.SetTool(t)
	b.SetStatus("Tool: " + t.String())
}

func (b *BoardWidget) Undo() {
	b.commitText()
	if _, ok := b.engine.Undo(); !ok {
		b.SetStatus("Nothing to undo")
	}
	b.engine.Redraw()
	b.show()
}

func (b *BoardWidget) Redo() {
	b.commitText()
	if _, ok := b.engine.Redo(); !ok {
		b.SetStatus("Nothing to redo")
	}
	b.engine.Redraw()
	b.show()
}

// Cancel drops the gesture in progress.
func (b *BoardWidget) Cancel() {
	b.hideText()
	b.engine.Cancel()
	b.pressed = false
	b.engine.Redraw()
	b.show()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.commitText()
	p := b.toSurface(e.Position)
	switch tool := b.settings.ActiveTool(); tool {
	case engine.ToolSelect:
		if a := b.engine.Select(p); a != nil {
			b.engine.BeginDrag(a, p)
		}
		b.engine.Redraw()
		b.pressed = true
	case engine.ToolText:
		b.engine.Begin(tool, p)
		b.showText(e.AbsolutePosition)
	default:
		b.engine.Begin(tool, p)
		b.pressed = true
	}
	b.show()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	p := b.toSurface(e.Position)
	tool := b.settings.ActiveTool()
	switch {
	case tool == engine.ToolSelect:
		b.engine.ContinueDrag(b.engine.Store().Selected(), p)
	case tool.Shape():
		b.engine.Redraw()
		b.engine.Update(tool, p)
	default:
		b.engine.Update(tool, p)
	}
	b.show()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.finish()
	}
}

func (b *BoardWidget) DragEnd() { b.finish() }

// finish ends a press. It runs for both MouseUp and DragEnd, whichever
// arrives first.
func (b *BoardWidget) finish() {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.settings.ActiveTool() == engine.ToolSelect {
		b.engine.EndDrag()
		return
	}
	b.engine.Commit()
	b.engine.Redraw()
	b.show()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.settings.Background())
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image}
}

func (r *boardWidgetRenderer) Refresh() {
	r.background.FillColor = r.board.settings.Background()
	r.background.Refresh()
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
