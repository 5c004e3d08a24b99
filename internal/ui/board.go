package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// textEntry is the floating input shown while a text label is typed.
type textEntry struct {
	entry *widget.Entry
	popup *widget.PopUp
}

func (b *BoardWidget) showText(at fyne.Position) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Label")
	entry.OnChanged = func(s string) {
		b.engine.Redraw()
		b.engine.UpdateText(s)
		b.show()
	}
	entry.OnSubmitted = func(string) { b.commitText() }

	t := &textEntry{entry: entry}
	b.text = t

	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	if c == nil {
		return
	}
	box := container.New(layout.NewGridWrapLayout(fyne.NewSize(220, entry.MinSize().Height)), entry)
	t.popup = widget.NewPopUp(box, c)
	t.popup.ShowAtPosition(at)
	c.Focus(entry)
}

// commitText commits the label being typed, if any.
func (b *BoardWidget) commitText() {
	if b.text == nil {
		return
	}
	b.hideText()
	b.engine.Commit()
	b.engine.Redraw()
	b.show()
}

func (b *BoardWidget) hideText() {
	if b.text == nil {
		return
	}
	if b.text.popup != nil {
		b.text.popup.Hide()
	}
	b.text = nil
}
